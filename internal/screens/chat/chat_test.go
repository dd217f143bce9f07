package chat

import (
	"context"
	"testing"

	"github.com/2210030429cse-tech/learningplatform/internal/llm"
	sess "github.com/2210030429cse-tech/learningplatform/internal/session"
	"github.com/2210030429cse-tech/learningplatform/internal/store"
	"github.com/2210030429cse-tech/learningplatform/internal/tutor"
)

// fakeProgress implements store.ProgressRepo for testing.
type fakeProgress struct {
	progress store.Progress
}

func (f *fakeProgress) Get(context.Context) (store.Progress, error) {
	return f.progress, nil
}

func (f *fakeProgress) Add(_ context.Context, score int) (store.Progress, error) {
	f.progress.TotalQuizzes++
	f.progress.TotalCorrect += score
	return f.progress, nil
}

func (f *fakeProgress) Reset(context.Context) error {
	f.progress = store.Progress{}
	return nil
}

func newTestChat(t *testing.T, replies ...llm.MockReply) (*ChatScreen, *sess.Session) {
	t.Helper()
	svc := tutor.NewService(llm.NewMockProvider(replies...), &fakeProgress{})
	session := sess.New(sess.LevelBeginner, sess.SubjectGeneral)
	return New(session, svc), session
}

func TestSendReleasesSlotOnCompletion(t *testing.T) {
	scr, session := newTestChat(t, llm.MockReply{Text: "Recursion is a function calling itself."})

	scr.input.Model.SetValue("explain recursion")
	cmd := scr.send()
	if cmd == nil {
		t.Fatal("send returned no command")
	}
	if session.InFlight() != sess.RequestChat {
		t.Errorf("in flight = %q, want chat", session.InFlight())
	}

	msg := cmd()
	if session.Busy() {
		t.Error("slot still claimed after the reply arrived")
	}

	scr.Update(msg)
	messages := session.Messages()
	if len(messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(messages))
	}
	if messages[2].Text != "Recursion is a function calling itself." {
		t.Errorf("reply = %q", messages[2].Text)
	}
}

func TestAbandonedSummaryDoesNotLeakSlot(t *testing.T) {
	scr, session := newTestChat(t, llm.MockReply{Text: "You covered recursion."})
	session.AppendUser("explain recursion")
	session.AppendAssistant("Recursion is a function calling itself.")

	cmd := scr.summarize()
	if cmd == nil {
		t.Fatal("summarize returned no command")
	}
	if !session.Busy() {
		t.Fatal("slot not claimed for the summary")
	}

	// The completion message is never delivered back to this screen, as if
	// the user had navigated away; the slot must clear regardless.
	_ = cmd()

	if session.Busy() {
		t.Error("slot still claimed after the summary completed")
	}
	if err := session.Begin(sess.RequestChat); err != nil {
		t.Errorf("later request refused: %v", err)
	}
}

func TestSendWhileBusyKeepsInput(t *testing.T) {
	scr, session := newTestChat(t)

	if err := session.Begin(sess.RequestQuiz); err != nil {
		t.Fatal(err)
	}

	scr.input.Model.SetValue("hello")
	if cmd := scr.send(); cmd != nil {
		t.Error("send started while another request was in flight")
	}
	if scr.input.Value() != "hello" {
		t.Errorf("input = %q, want preserved text", scr.input.Value())
	}
	if session.InFlight() != sess.RequestQuiz {
		t.Errorf("in flight = %q, want quiz untouched", session.InFlight())
	}
}
