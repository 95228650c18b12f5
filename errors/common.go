package errors

import "fmt"

func InvalidParamsErr(err error) error {
	return E(Invalid, "invalid params", err)
}

func InvalidBodyErr(err error) error {
	return E(Invalid, "invalid request body", err)
}

func ValidationFailedErr(err error) error {
	return E(Invalid, "validation failed", err)
}

func EmptyParamErr(field string) error {
	ve := ValidationErrs()
	ve.Add(field, "cannot be empty")
	return E(Invalid, "validation failed", ve.Err())
}

// AuthFailedErr signals an upstream 401/403; callers must not retry it.
func AuthFailedErr() error {
	return E(Unauthorized, "authentication failed, please log in again", nil)
}

// RemoteErr returns a formated error for an unexpected upstream status
func RemoteErr(op string, status int, body string) error {
	return E(Remote, fmt.Sprintf("%s failed with status %d", op, status), fmt.Errorf("%s", body))
}
