package escrowrpc

// Amounts and counts are encoded as strings to not lose precision with
// clients that parse JSON numbers as doubles.

type Deposit struct {
	DepositId    string `json:"deposit_id"`
	Owner        string `json:"owner"`
	Amount       uint64 `json:"amount,string"`
	Timestamp    int64  `json:"timestamp,string"`
	MaturityTime int64  `json:"maturity_time,string"`
	Status       string `json:"status"`
	Withdrawn    bool   `json:"withdrawn"`
	WithdrawnAt  int64  `json:"withdrawn_at,string,omitempty"`
}

type Page struct {
	Number int64 `json:"number"`
	Size   int64 `json:"size"`
}

type DepositRequest struct {
	Owner  string `json:"owner"`
	Amount uint64 `json:"amount,string"`
}

type DepositResponse struct {
	DepositId string `json:"deposit_id"`
}

type WithdrawRequest struct {
	DepositId string `json:"deposit_id"`
	Caller    string `json:"caller"`
}

type WithdrawResponse struct{}

type WithdrawAllPossibleRequest struct {
	Owner string `json:"owner"`
}

type WithdrawAllPossibleResponse struct {
	DepositIds []string `json:"deposit_ids"`
	Amount     uint64   `json:"amount,string"`
}

type IsWithdrawableRequest struct {
	DepositId string `json:"deposit_id"`
}

type IsWithdrawableResponse struct {
	Withdrawable bool `json:"withdrawable"`
}

type GetTotalWithdrawableAmountRequest struct {
	Owner string `json:"owner"`
}

type GetTotalWithdrawableAmountResponse struct {
	Amount uint64 `json:"amount,string"`
}

type GetWithdrawableListRequest struct {
	Owner string `json:"owner"`
}

type GetWithdrawableListResponse struct {
	DepositIds []string `json:"deposit_ids"`
}

type GetTotalNumDepositsRequest struct{}

type GetTotalNumDepositsResponse struct {
	Count uint64 `json:"count,string"`
}

type GetDepositRequest struct {
	DepositId string `json:"deposit_id"`
}

type GetDepositResponse struct {
	Deposit *Deposit `json:"deposit"`
}

type ListDepositsRequest struct {
	Owner string `json:"owner"`
	Page  *Page  `json:"page,omitempty"`
}

type ListDepositsResponse struct {
	Deposits []*Deposit `json:"deposits"`
}

type GetEscrowBalanceRequest struct{}

type GetEscrowBalanceResponse struct {
	LedgerBalance  uint64 `json:"ledger_balance,string"`
	GatewayBalance uint64 `json:"gateway_balance,string"`
	Consistent     bool   `json:"consistent"`
}

type Webhook struct {
	Id        string `json:"id"`
	Topic     string `json:"topic"`
	Endpoint  string `json:"endpoint"`
	IsSecured bool   `json:"is_secured"`
}

type AddWebhookRequest struct {
	Topic    string `json:"topic"`
	Endpoint string `json:"endpoint"`
	Secret   string `json:"secret,omitempty"`
}

type AddWebhookResponse struct {
	Id string `json:"id"`
}

type RemoveWebhookRequest struct {
	Id string `json:"id"`
}

type RemoveWebhookResponse struct{}

type ListWebhooksRequest struct {
	Topic string `json:"topic"`
}

type ListWebhooksResponse struct {
	Webhooks []*Webhook `json:"webhooks"`
}

type FaucetRequest struct {
	Account string `json:"account"`
	Amount  uint64 `json:"amount,string"`
}

type FaucetResponse struct{}

type ApproveRequest struct {
	Owner  string `json:"owner"`
	Amount uint64 `json:"amount,string"`
}

type ApproveResponse struct{}

type BalanceOfRequest struct {
	Account string `json:"account"`
}

type BalanceOfResponse struct {
	Balance   uint64 `json:"balance,string"`
	Allowance uint64 `json:"allowance,string"`
}

type AdvanceClockRequest struct {
	Seconds int64 `json:"seconds,string"`
}

type AdvanceClockResponse struct {
	Now int64 `json:"now,string"`
}
