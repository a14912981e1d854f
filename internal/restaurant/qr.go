package restaurant

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// BuildTablePayloadURL builds the URL encoded into one table's QR code.
// Shape: <base>/r/<restaurantID>?table=<n>
func BuildTablePayloadURL(baseURL string, restaurantID string, table int) string {
	base := strings.TrimRight(baseURL, "/")

	q := url.Values{}
	q.Set("table", strconv.Itoa(table))

	return fmt.Sprintf("%s/r/%s?%s", base, url.PathEscape(restaurantID), q.Encode())
}
