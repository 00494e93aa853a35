package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

// Hook runs a shell command template for each message, e.g.
// "notify-send 'Board' '{{.Subject}}'". Placeholders: {{.Subject}},
// {{.Body}}, {{.Level}}.
type Hook struct {
	Command string
}

func (h Hook) Send(msg Message) error {
	if h.Command == "" {
		return nil
	}
	cmd := exec.Command("sh", "-c", templateMessage(h.Command, msg))
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("notify: hook command failed: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// templateMessage replaces placeholders in the command template with message values.
func templateMessage(command string, msg Message) string {
	r := strings.NewReplacer(
		"{{.Subject}}", msg.Subject,
		"{{.Body}}", msg.Body,
		"{{.Level}}", string(msg.Level),
	)
	return r.Replace(command)
}
