package validators

import (
	"encoding/json"
	"io"
	"net/http"

	pkgerrors "github.com/southerntents/quote-backend/pkg/errors"
)

// Quote form payloads are small; anything larger is not a form post.
const maxBodyBytes int64 = 64 << 10

// DecodeJSONBody reads a JSON payload into dest. The quote form posts an
// open schema (catalog keys appear as top-level fields), so unknown fields
// are allowed and field validation happens in the domain layer.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid request body")
	}
	return nil
}
