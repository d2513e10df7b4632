package application

import "errors"

var (
	// ErrServiceUnavailable is returned in case of internal errors, like a
	// failure of the underlying storage.
	ErrServiceUnavailable = errors.New("service is unavailable, try again later")
	// ErrPubSubNotInitialized is returned when attempting to manage webhooks
	// without having configured a pubsub service.
	ErrPubSubNotInitialized = errors.New("pubsub service is not initialized")
	// ErrUnknownTopic is returned when adding or listing webhooks for a topic
	// other than the deposit events or the any topic.
	ErrUnknownTopic = errors.New("unknown topic")
	// ErrSimulationDisabled is returned when using faucet, approve or advance
	// clock operations on a daemon not running in simulated mode.
	ErrSimulationDisabled = errors.New("daemon is not running in simulated mode")
	// ErrInvalidDuration is returned when advancing the simulated clock by a
	// zero or negative duration.
	ErrInvalidDuration = errors.New("duration must be positive")
	// ErrWithdrawalNotCommitted is returned when the tokens of a withdrawal
	// have been paid out but the ledger could not be updated. The deposits are
	// considered withdrawn from then on, the ledger update is retried by the
	// following operations.
	ErrWithdrawalNotCommitted = errors.New(
		"funds paid out, ledger update pending: do not retry the withdrawal",
	)
)
