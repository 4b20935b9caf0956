// Package sheets is the row store adapter: a Google Sheets REST client plus
// the repositories that map sheet ranges onto domain types.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/oauth2/jwt"
)

const (
	defaultBaseURL    = "https://sheets.googleapis.com/v4/spreadsheets"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	scopeSpreadsheets = "https://www.googleapis.com/auth/spreadsheets"
)

// Config carries the service-account credentials and spreadsheet identity.
type Config struct {
	SpreadsheetID string
	ProjectID     string
	ClientEmail   string
	// PrivateKey is the PEM key; literal \n escapes from the environment
	// are restored before use.
	PrivateKey string
}

// Client talks to the Sheets values and batchUpdate APIs for one
// spreadsheet. It holds no state beyond the authorized HTTP client; every
// call is a fresh request.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	spreadsheetID string
}

// NewClient builds an authorized client using the two-legged service-account
// JWT flow. Token refresh happens inside the oauth2 transport; the key is
// only validated when the first token is requested.
func NewClient(ctx context.Context, cfg Config) *Client {
	jwtCfg := &jwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(normalizePrivateKey(cfg.PrivateKey)),
		Scopes:     []string{scopeSpreadsheets},
		TokenURL:   googleTokenURL,
	}
	return &Client{
		httpClient:    jwtCfg.Client(ctx),
		baseURL:       defaultBaseURL,
		spreadsheetID: cfg.SpreadsheetID,
	}
}

// valueRange is the wire shape of values get/append/update calls. Cells
// arrive as strings, numbers, or bools depending on cell formatting.
type valueRange struct {
	Range  string  `json:"range,omitempty"`
	Values [][]any `json:"values"`
}

func (c *Client) valuesURL(rng string) string {
	return c.baseURL + "/" + c.spreadsheetID + "/values/" + url.PathEscape(rng)
}

// Values fetches a rectangular range. Trailing empty cells are absent from
// the response; callers index defensively.
func (c *Client) Values(ctx context.Context, rng string) ([][]string, error) {
	body, err := c.do(ctx, http.MethodGet, c.valuesURL(rng), nil)
	if err != nil {
		return nil, err
	}

	var vr valueRange
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, fmt.Errorf("decoding values response: %w", err)
	}

	rows := make([][]string, len(vr.Values))
	for i, raw := range vr.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = cellString(cell)
		}
		rows[i] = row
	}
	return rows, nil
}

// Append adds one row after the last data row of the range.
func (c *Client) Append(ctx context.Context, rng string, row []string) error {
	endpoint := c.valuesURL(rng) + ":append?valueInputOption=USER_ENTERED&insertDataOption=INSERT_ROWS"
	_, err := c.do(ctx, http.MethodPost, endpoint, valueRange{Values: [][]any{toAnyRow(row)}})
	return err
}

// Update overwrites the cells of the given range.
func (c *Client) Update(ctx context.Context, rng string, values [][]string) error {
	endpoint := c.valuesURL(rng) + "?valueInputOption=USER_ENTERED"
	rows := make([][]any, len(values))
	for i, row := range values {
		rows[i] = toAnyRow(row)
	}
	_, err := c.do(ctx, http.MethodPut, endpoint, valueRange{Range: rng, Values: rows})
	return err
}

// DeleteRows removes rows [startIndex, endIndex) of the sheet with the given
// grid id via a batchUpdate deleteDimension request.
func (c *Client) DeleteRows(ctx context.Context, sheetGID int64, startIndex, endIndex int) error {
	payload := map[string]any{
		"requests": []any{
			map[string]any{
				"deleteDimension": map[string]any{
					"range": map[string]any{
						"sheetId":    sheetGID,
						"dimension":  "ROWS",
						"startIndex": startIndex,
						"endIndex":   endIndex,
					},
				},
			},
		},
	}
	_, err := c.do(ctx, http.MethodPost, c.baseURL+"/"+c.spreadsheetID+":batchUpdate", payload)
	return err
}

// Ping fetches the spreadsheet metadata. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, c.baseURL+"/"+c.spreadsheetID+"?fields=spreadsheetId", nil)
	return err
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets API request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("sheets API error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func toAnyRow(row []string) []any {
	out := make([]any, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}

// cellString normalizes a JSON cell value to its sheet text.
func cellString(v any) string {
	switch cell := v.(type) {
	case string:
		return cell
	case float64:
		return strconv.FormatFloat(cell, 'f', -1, 64)
	case bool:
		if cell {
			return "TRUE"
		}
		return "FALSE"
	case nil:
		return ""
	default:
		return fmt.Sprint(cell)
	}
}

// normalizePrivateKey restores real newlines in a key passed through an
// environment variable.
func normalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}
