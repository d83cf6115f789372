package services

import (
	"database/sql"
	"errors"

	"github.com/klubapp/klub-backend/utils"
)

// mapStoreError turns a repository failure into a typed error: a missing row
// becomes NotFound for the given resource, anything else is wrapped as an
// upstream failure keeping the original message.
func mapStoreError(err error, resource, upstreamMsg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return utils.NewNotFoundError(resource)
	}
	return utils.NewUpstreamError(upstreamMsg, err)
}
