package demo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/codehunter"
)

// Greeting is the assistant's opening message.
const Greeting = "Hi! I'm your code assistant. I can help you understand, improve, and work with the extracted code. " +
	"Try asking me to explain a function, suggest improvements, or convert code to a different framework!"

const replyFormat = "I understand you're asking about: %q. Based on the code context, here's what I can help you with...\n\n" +
	"This is a demo response. A real implementation would send the question and the %s to a language model."

// Ensure Asker implements codehunter.Asker at compile time.
var _ codehunter.Asker = (*Asker)(nil)

// Asker answers every question with a canned reply.
type Asker struct {
	delay time.Duration
}

// NewAsker creates an Asker. The default delay is DefaultAskDelay.
func NewAsker(opts ...Option) *Asker {
	o := options{delay: DefaultAskDelay}
	for _, opt := range opts {
		opt(&o)
	}
	return &Asker{delay: o.delay}
}

// Ask returns the canned reply for question.
func (a *Asker) Ask(ctx context.Context, question string, files []codehunter.SourceFile) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", codehunter.Errorf(codehunter.EINVALID, "question required")
	}

	if err := sleep(ctx, a.delay); err != nil {
		return "", err
	}

	return fmt.Sprintf(replyFormat, question, describeFiles(files)), nil
}

func describeFiles(files []codehunter.SourceFile) string {
	switch len(files) {
	case 0:
		return "extracted code"
	case 1:
		return "1 extracted file"
	default:
		return fmt.Sprintf("%d extracted files", len(files))
	}
}
