package application

import (
	"encoding/json"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-timelock/internal/core/domain"
	"github.com/tdex-network/tdex-timelock/internal/core/ports"
)

func publishDepositCreatedTopic(pubsub ports.PubSub, deposit domain.Deposit) {
	payload := map[string]interface{}{
		"deposit_id":    strconv.FormatUint(deposit.ID, 10),
		"owner":         deposit.Owner,
		"amount":        deposit.Amount,
		"timestamp":     deposit.Timestamp,
		"maturity_time": deposit.MaturityTime(),
	}
	publish(pubsub, DepositCreatedTopic, payload)
}

func publishDepositWithdrawnTopic(pubsub ports.PubSub, deposit domain.Deposit) {
	payload := map[string]interface{}{
		"deposit_id":   strconv.FormatUint(deposit.ID, 10),
		"owner":        deposit.Owner,
		"amount":       deposit.Amount,
		"withdrawn_at": deposit.WithdrawnAt,
	}
	publish(pubsub, DepositWithdrawnTopic, payload)
}

func publishDepositsWithdrawnTopic(
	pubsub ports.PubSub, result WithdrawalResult,
) {
	ids := make([]string, 0, len(result.DepositIDs))
	for _, id := range result.DepositIDs {
		ids = append(ids, strconv.FormatUint(id, 10))
	}
	payload := map[string]interface{}{
		"deposit_ids": ids,
		"owner":       result.Owner,
		"amount":      result.Amount,
	}
	publish(pubsub, DepositsWithdrawnTopic, payload)
}

func publish(pubsub ports.PubSub, topic string, payload interface{}) {
	if pubsub == nil {
		return
	}

	message, _ := json.Marshal(payload)
	if err := pubsub.Publish(topic, string(message)); err != nil {
		log.WithError(err).Warnf(
			"an error occured while publishing message for topic %s", topic,
		)
	}
}
