package cart

import "errors"

const (
	StatusOK    = "ok"
	StatusError = "error"
)

type ItemResult struct {
	DishID  int    `json:"dish_id"`
	Qty     int    `json:"qty"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	err     error
}

type BatchResult struct {
	Processed []ItemResult `json:"processed"`
	Updated   int          `json:"updated"`
	Failed    int          `json:"failed"`
}

func (b BatchResult) OK() bool {
	return b.Failed == 0
}

func (b BatchResult) FailedItems() []ItemResult {
	var failed []ItemResult
	for _, res := range b.Processed {
		if res.Status == StatusError {
			failed = append(failed, res)
		}
	}
	return failed
}

func (b BatchResult) Err() error {
	var errs []error
	for _, res := range b.Processed {
		if res.err != nil {
			errs = append(errs, res.err)
		}
	}
	return errors.Join(errs...)
}
