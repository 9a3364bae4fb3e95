package cli

import (
	"strings"

	"github.com/pkg/errors"

	"marketplace/internal/domain"
	"marketplace/internal/log"
)

var sentinels = []error{
	domain.ErrValidation,
	domain.ErrNotFound,
	domain.ErrAuthorization,
	domain.ErrConflict,
	domain.ErrInvalidState,
}

// friendly turns a core error into the line shown to the user.
func friendly(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuthentication):
		return "Unmatched username and password."
	case errors.Is(err, domain.ErrStorage):
		return "Could not save your changes, please try again."
	}
	msg := err.Error()
	for _, s := range sentinels {
		if errors.Is(err, s) {
			msg = strings.TrimSuffix(msg, ": "+s.Error())
			break
		}
	}
	return "Error: " + msg
}

// report prints err and logs it under action: authorization and login
// failures as security events, storage failures as errors.
func (t *Term) report(action string, err error, fields map[string]any) {
	t.Println(friendly(err))
	switch {
	case errors.Is(err, domain.ErrAuthorization), errors.Is(err, domain.ErrAuthentication):
		log.Security(action+".fail", withKind(fields, err))
	case errors.Is(err, domain.ErrStorage):
		log.Error(action+".fail", err, fields)
	default:
		log.Info(action+".rejected", withKind(fields, err))
	}
}

func withKind(fields map[string]any, err error) map[string]any {
	out := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		out[k] = v
	}
	out["reason"] = domain.Kind(err)
	out["detail"] = err.Error()
	return out
}
