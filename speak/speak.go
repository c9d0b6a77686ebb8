// Package speak pronounces vocabulary words through an external
// text-to-speech command.
package speak

import (
	"fmt"
	"os/exec"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
)

// DefaultVoice returns the voice used when none is configured. Only say
// gets one, other commands speak with their own default.
func DefaultVoice(command string) string {
	if command == "say" {
		return "Samantha"
	}
	return ""
}

// DefaultCommand returns the speech command of the platform: say on macOS,
// espeak elsewhere.
func DefaultCommand() string {
	if runtime.GOOS == "darwin" {
		return "say"
	}
	return "espeak"
}

// Speaker runs one speech process at a time. Starting a new one kills the
// previous if it is still speaking.
type Speaker struct {
	command string
	voice   string

	mu      sync.Mutex
	current *exec.Cmd
	done    chan struct{}
}

// New returns a Speaker running command. An empty command disables speech.
func New(command, voice string) *Speaker {
	return &Speaker{command: command, voice: voice}
}

// Args returns the command line arguments for text.
func (s *Speaker) Args(text string) []string {
	if s.voice == "" {
		return []string{text}
	}

	switch s.command {
	case "say", "espeak", "espeak-ng":
		return []string{"-v", s.voice, text}
	}

	return []string{text}
}

// Speak starts speaking text and returns without waiting for it to finish.
func (s *Speaker) Speak(text string) error {
	if s.command == "" || text == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stop()

	cmd := exec.Command(s.command, s.Args(text)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to execute %s: %w", s.command, err)
	}

	done := make(chan struct{})
	s.current = cmd
	s.done = done
	go func() {
		defer close(done)
		// a kill also ends here
		if err := cmd.Wait(); err != nil {
			log.Debug().Err(err).Str("text", text).Msg("speech process ended")
		}
	}()

	return nil
}

// Stop kills the running speech process, if any.
func (s *Speaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stop()
}

func (s *Speaker) stop() {
	if s.current == nil {
		return
	}

	select {
	case <-s.done:
	default:
		if err := s.current.Process.Kill(); err != nil {
			log.Debug().Err(err).Msg("failed to kill speech process")
		}
		<-s.done
	}

	s.current = nil
	s.done = nil
}
