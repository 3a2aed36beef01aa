package domain

import "errors"

type Result struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Source    string      `json:"source,omitempty"`
	ErrorKind string      `json:"error_kind,omitempty"`
}

type kinded interface {
	ErrorKind() string
}

func Ok(data interface{}) Result {
	return Result{Success: true, Data: data}
}

// Fail collapses err into a failed envelope, keeping its kind when the error carries one.
func Fail(err error) Result {
	if err == nil {
		return Result{Success: false, ErrorKind: "internal"}
	}
	res := Result{Success: false, Message: err.Error(), ErrorKind: "internal"}
	var k kinded
	if errors.As(err, &k) {
		res.ErrorKind = k.ErrorKind()
	}
	return res
}
