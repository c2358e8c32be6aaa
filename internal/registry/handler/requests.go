package handler

type addItemRequest struct {
	Data string `json:"data"`
}

type stakeRequest struct {
	Amount uint64 `json:"amount"`
}

type claimRequest struct {
	Salt uint64 `json:"salt"`
}

type itemResponse struct {
	ID         string `json:"id"`
	Data       string `json:"data"`
	Owner      string `json:"owner"`
	Stake      uint64 `json:"stake"`
	UnlockTime string `json:"unlock_time"`
	Locked     bool   `json:"locked"`
	Challenged bool   `json:"challenged"`
}

type listItemsResponse struct {
	Items []itemResponse `json:"items"`
}

type challengeResponse struct {
	ChallengeID   string `json:"challenge_id"`
	Address       string `json:"address"`
	Challenger    string `json:"challenger"`
	RequiredFunds uint64 `json:"required_funds"`
	PollID        uint64 `json:"poll_id,omitempty"`
}

type resolveResponse struct {
	Outcome string `json:"outcome"`
}

type claimResponse struct {
	Reward uint64 `json:"reward"`
}
