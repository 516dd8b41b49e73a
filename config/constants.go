package config

const (
	// SolstakeProgramID is the deployed staking program. The same build is
	// deployed to every cluster.
	SolstakeProgramID = "Fg6PaFpoGXkYsidMpWTK6W2BeZ7FEfcYkg476zPFsLnS"

	// Mainnet constants.
	MainnetSolanaRPC         = "https://api.mainnet-beta.solana.com"
	MainnetSolstakeProgramID = SolstakeProgramID

	// Testnet constants.
	TestnetSolanaRPC         = "https://api.testnet.solana.com"
	TestnetSolstakeProgramID = SolstakeProgramID

	// Devnet constants.
	DevnetSolanaRPC         = "https://api.devnet.solana.com"
	DevnetSolstakeProgramID = SolstakeProgramID

	// Localnet constants.
	LocalnetSolanaRPC         = "http://localhost:8899"
	LocalnetSolstakeProgramID = SolstakeProgramID
)
