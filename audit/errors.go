package audit

import "errors"

var (
	// ErrMissingAuditCall is returned when the supplied API call uuid does
	// not reference an existing ApiCall row.
	ErrMissingAuditCall = errors.New("missing audit API call")

	// ErrMissingTransaction is returned when a caller omits the open
	// transaction every audit write must run inside.
	ErrMissingTransaction = errors.New("audit write requires an open transaction")

	// ErrMissingAuditLog is returned when change rows are recorded without
	// an owning audit log id.
	ErrMissingAuditLog = errors.New("audit changes require an audit log")

	// ErrInvalidInstance is returned for nil instances or instances that
	// cannot be audited in the requested way, e.g. a delete entry whose
	// soft-delete marker was never set.
	ErrInvalidInstance = errors.New("instance cannot be audited")
)
