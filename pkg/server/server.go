package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/fatih/color"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	DefaultAddress    = ":2222"
	welcome           = "Welcome to tetristerm"
)

var ErrNoBinary = errors.New("server: client binary must be specified")

// Server hands every ssh session its own tetristerm process in a pty.
type Server struct {
	ListenAddress string
	HostKeyFile   string
	// Binary is the tetristerm client started for each session.
	Binary string
	// Args are passed to Binary after the nickname flag.
	Args []string

	mu     sync.Mutex
	server *ssh.Server
}

func (s *Server) command(ctx context.Context, nick, termName string) *exec.Cmd {
	args := append([]string{"-nick", nick}, s.Args...)
	cmd := exec.CommandContext(ctx, s.Binary, args...)
	cmd.Env = append(cmd.Env, fmt.Sprintf("TERM=%s", termName))
	return cmd
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}

func (s *Server) handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}

	nick := Nickname(sess.User())
	log.Printf("%s connected from %s", color.GreenString(nick), sess.RemoteAddr())
	defer log.Printf("%s disconnected", color.YellowString(nick))

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := s.command(cmdCtx, nick, ptyReq.Term)
	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		log.Printf("%s: %s", color.RedString("failed to start client"), err)
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				log.Printf("Failed to resize pty for %s: %s", nick, err)
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancelCmd()
	if err := cmd.Wait(); err != nil {
		log.Printf("Client for %s exited: %s", nick, err)
		sess.Exit(1)
		return
	}
	sess.Exit(0)
}

func (s *Server) newSSHServer() (*ssh.Server, error) {
	srv := &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			// No questions, the instruction is only shown as a greeting.
			if _, err := challenger(ctx.User(), welcome, nil, nil); err != nil {
				log.Printf("Keyboard interactive greeting failed: %s", err)
			}
			return true
		},
	}

	if s.HostKeyFile != "" {
		if err := srv.SetOption(ssh.HostKeyFile(s.HostKeyFile)); err != nil {
			return nil, fmt.Errorf("failed to load host key: %w", err)
		}
	}

	return srv, nil
}

// ListenAndServe blocks until the server is shut down.
func (s *Server) ListenAndServe() error {
	if s.Binary == "" {
		return ErrNoBinary
	}
	if s.ListenAddress == "" {
		s.ListenAddress = DefaultAddress
	}

	srv, err := s.newSSHServer()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.server = srv
	s.mu.Unlock()

	log.Printf("Listening at %s", color.CyanString(s.ListenAddress))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.server
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
