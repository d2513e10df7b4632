package application

// Topics to be published
const (
	DepositCreatedTopic    = "DEPOSIT_CREATED"
	DepositWithdrawnTopic  = "DEPOSIT_WITHDRAWN"
	DepositsWithdrawnTopic = "DEPOSITS_WITHDRAWN"
)

// Supported db types
const (
	DBBadger   = "badger"
	DBInMemory = "inmemory"
)

var (
	// Topics are all the topics one can subscribe to, "*" included.
	Topics = map[string]struct{}{
		DepositCreatedTopic:    {},
		DepositWithdrawnTopic:  {},
		DepositsWithdrawnTopic: {},
		"*":                    {},
	}

	SupportedDBType = map[string]struct{}{
		DBBadger:   {},
		DBInMemory: {},
	}
)
