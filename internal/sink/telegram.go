package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"fplthreats/internal/report"
)

// Telegram caps message text at 4096 characters.
const telegramMaxText = 4000

// Telegram posts the report through the Bot API sendMessage method.
type Telegram struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
	logger   zerolog.Logger
}

// NewTelegram constructs a Telegram report sink.
func NewTelegram(botToken, chatID, baseURL string, timeout time.Duration, logger zerolog.Logger) *Telegram {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if baseURL == "" {
		baseURL = "https://api.telegram.org"
	}

	return &Telegram{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		logger:   logger.With().Str("component", "sink_telegram").Logger(),
	}
}

func (t *Telegram) Name() string { return "telegram" }

// Send pushes the table as a preformatted message.
func (t *Telegram) Send(ctx context.Context, table report.Table) error {
	payload := map[string]string{
		"chat_id":    t.chatID,
		"text":       renderMessage(table),
		"parse_mode": "HTML",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	var result struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err == nil {
		if !result.OK {
			return fmt.Errorf("telegram returned ok=false")
		}
	}

	t.logger.Info().Int("rows", table.Len()).Msg("report sent to telegram")
	return nil
}

func renderMessage(table report.Table) string {
	var text strings.Builder
	if table.Len() == 0 {
		return "[FPL Threats]\nNo candidates above the recent-form floor."
	}

	var body bytes.Buffer
	_ = RenderText(&body, report.Table{Header: compactHeader(table.Header), Rows: compactRows(table.Rows)})
	// Entities count against the limit, so cut the escaped text on a row
	// boundary.
	escaped := html.EscapeString(body.String())
	if len(escaped) > telegramMaxText {
		escaped = escaped[:telegramMaxText]
		if i := strings.LastIndexByte(escaped, '\n'); i > 0 {
			escaped = escaped[:i+1]
		}
	}

	text.WriteString(fmt.Sprintf("[FPL Threats] %d players\n", table.Len()))
	text.WriteString("<pre>")
	text.WriteString(escaped)
	text.WriteString("</pre>")
	return text.String()
}

// compact keeps the columns that fit a phone screen: name, PxG, PxGLx,
// L5GW and profile.
var compactColumns = []int{2, 7, 8, 9, 10}

func compactHeader(h []string) []string {
	return pick(h, compactColumns)
}

func compactRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = pick(r, compactColumns)
	}
	return out
}

func pick(cells []string, idx []int) []string {
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		if i < len(cells) {
			out = append(out, cells[i])
		}
	}
	return out
}

var _ Sink = (*Telegram)(nil)
