package cli

// Flag constants for swap CLI commands
const (
	// FlagDeadline is the block height after which a trading or
	// liquidity transaction is rejected; zero disables the check
	FlagDeadline = "deadline"
)
