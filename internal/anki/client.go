// Package anki is the client for the AnkiConnect local HTTP control API.
// It speaks the version-6 action envelope and stays transport-only: HTML
// assembly and orchestration live elsewhere.
package anki

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
)

// connectVersion is the AnkiConnect protocol version this client speaks.
const connectVersion = 6

var (
	// ErrUnavailable is returned when AnkiConnect cannot be reached at
	// all. Anki is probably not running or the plugin is missing.
	ErrUnavailable = errors.New("ankiconnect unavailable")

	// ErrMalformedReply is returned when a reply does not carry exactly
	// the result/error members the protocol promises.
	ErrMalformedReply = errors.New("malformed ankiconnect reply")

	// ErrActionFailed wraps the error string AnkiConnect itself reports
	// for a failed action.
	ErrActionFailed = errors.New("ankiconnect action failed")
)

// Client calls AnkiConnect. Safe for sequential use; the cached model
// field names are guarded for safety but the pipeline never calls
// concurrently.
type Client struct {
	baseURL    string
	cardModel  string
	httpClient *http.Client

	mu         sync.Mutex
	fieldNames []string
}

// NewClient returns a client for the AnkiConnect endpoint. The card
// model names the note type used for every created note.
func NewClient(baseURL, cardModel string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, cardModel: cardModel, httpClient: httpClient}
}

type request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

// invoke posts one action envelope and returns the raw result member.
func (c *Client) invoke(ctx context.Context, action string, params any, out any) error {
	body, err := json.Marshal(request{Action: action, Version: connectVersion, Params: params})
	if err != nil {
		return fmt.Errorf("anki %s: marshal request: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("anki %s: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("anki %s: unexpected status %d", action, resp.StatusCode)
	}

	// AnkiConnect replies are exactly {"result": ..., "error": ...};
	// anything else means we are not talking to AnkiConnect.
	var envelope map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: %s: decode: %v", ErrMalformedReply, action, err)
	}
	rawResult, hasResult := envelope["result"]
	rawError, hasError := envelope["error"]
	if len(envelope) != 2 || !hasResult || !hasError {
		return fmt.Errorf("%w: %s: unexpected members", ErrMalformedReply, action)
	}

	var actionErr *string
	if err := json.Unmarshal(rawError, &actionErr); err != nil {
		return fmt.Errorf("%w: %s: error member: %v", ErrMalformedReply, action, err)
	}
	if actionErr != nil {
		return fmt.Errorf("%w: %s: %s", ErrActionFailed, action, *actionErr)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rawResult, out); err != nil {
		return fmt.Errorf("%w: %s: result member: %v", ErrMalformedReply, action, err)
	}
	return nil
}

// Version returns the AnkiConnect protocol version, doubling as the
// connection check.
func (c *Client) Version(ctx context.Context) (int, error) {
	var version int
	if err := c.invoke(ctx, "version", nil, &version); err != nil {
		return 0, err
	}
	return version, nil
}

// DeckNames lists all existing decks.
func (c *Client) DeckNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.invoke(ctx, "deckNames", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// CreateDeckIfMissing ensures the deck exists.
func (c *Client) CreateDeckIfMissing(ctx context.Context, deck string) error {
	names, err := c.DeckNames(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		if name == deck {
			return nil
		}
	}
	return c.invoke(ctx, "createDeck", map[string]any{"deck": deck}, nil)
}

// ModelFieldNames returns the configured card model's field names,
// cached after the first successful call. When the call fails the
// provided fallback labels are returned, so note creation still works
// against a default-localized Anki.
func (c *Client) ModelFieldNames(ctx context.Context, fallback []string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fieldNames != nil {
		return c.fieldNames
	}

	var names []string
	err := c.invoke(ctx, "modelFieldNames", map[string]any{"modelName": c.cardModel}, &names)
	if err != nil || len(names) == 0 {
		return fallback
	}
	c.fieldNames = names
	return names
}

// StoreMediaFile uploads a local file into Anki's media store under the
// given filename.
func (c *Client) StoreMediaFile(ctx context.Context, path, filename string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("anki storeMediaFile: read %s: %w", path, err)
	}
	params := map[string]any{
		"filename": filename,
		"data":     base64.StdEncoding.EncodeToString(data),
	}
	return c.invoke(ctx, "storeMediaFile", params, nil)
}

// AddNote creates one note and returns the new note ID. Duplicates are
// rejected by Anki itself via allowDuplicate false.
func (c *Client) AddNote(ctx context.Context, deck, frontField, backField, front, back string, tags []string) (int64, error) {
	if tags == nil {
		tags = []string{}
	}
	note := map[string]any{
		"deckName":  deck,
		"modelName": c.cardModel,
		"fields": map[string]string{
			frontField: front,
			backField:  back,
		},
		"tags": tags,
		"options": map[string]any{
			"allowDuplicate": false,
		},
	}

	var noteID int64
	if err := c.invoke(ctx, "addNote", map[string]any{"note": note}, &noteID); err != nil {
		return 0, err
	}
	return noteID, nil
}
