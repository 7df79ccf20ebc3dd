package punch

import (
	"bytes"
	"fmt"
	"os/exec"
)

type Notifier interface {
	Notify(title, message string) error
}

type MacNotifier struct{}

func (n *MacNotifier) Notify(title string, message string) error {
	var errOut bytes.Buffer
	cmd := exec.Command("osascript", "-e", `display notification "`+message+`" with title "click" subtitle "`+title+`" sound name "Blow"`)
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return fmt.Errorf(errOut.String())
	}
	return nil
}
