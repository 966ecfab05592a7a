package main

import (
	"chat-engine/domain"
	"chat-engine/domain/event"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// console is the event sink of the interactive session.
type console struct {
	mu  sync.Mutex
	out io.Writer
}

func newConsole(out io.Writer) *console {
	return &console{out: out}
}

func (c *console) Consume(_ context.Context, e event.DomainEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch evt := e.(type) {
	case event.TypingStarted:
		_, err := fmt.Fprint(c.out, color.Gray.Render("bot is typing...\r"))
		return err
	case event.TypingStopped:
		_, err := fmt.Fprint(c.out, "                \r")
		return err
	case event.ReplyReady:
		return c.reply(evt.Reply)
	}
	return nil
}

func (c *console) reply(r domain.Reply) error {
	if r.Error {
		_, err := fmt.Fprintln(c.out, color.Red.Render("bot> "+r.Message))
		return err
	}
	meta := color.Gray.Render(fmt.Sprintf("[%s %.2f]", r.Intent, r.Confidence))
	_, err := fmt.Fprintf(c.out, "%s %s\n", color.New(color.FgGreen, color.OpBold).Render("bot> "+r.Message), meta)
	return err
}

func (c *console) Banner(roomID domain.RoomID) {
	header := fmt.Sprintf(" room %s  /history /clear /train /quit ", roomID)
	c.println(color.New(color.BgBlack, color.FgGreen).Render(header))
}

func (c *console) Prompt(user string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, color.Cyan.Render(user+"> "))
}

func (c *console) Info(msg string) {
	c.println(color.Yellow.Render(msg))
}

func (c *console) Error(err error) {
	c.println(color.Red.Render(err.Error()))
}

func (c *console) History(messages []domain.ConversationMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Time", "Role", "Intent", "Confidence", "Message"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, m := range messages {
		confidence := ""
		if m.Role == domain.RoleAssistant {
			confidence = fmt.Sprintf("%.2f", m.Confidence)
		}
		table.Append([]string{
			time.UnixMilli(m.Timestamp).Format("15:04:05"),
			string(m.Role),
			m.Intent,
			confidence,
			m.Message,
		})
	}
	table.Render()
}

func (c *console) println(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, s)
}
