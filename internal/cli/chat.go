package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"device-compare/internal/client"
	app_errors "device-compare/internal/errors"
	"device-compare/internal/session"
)

func newChatCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <device1> <device2>",
		Short: "Compare two devices, then ask follow-up questions",
		Long: `Run a comparison and start an interactive follow-up chat grounded in it.
Type a question and press Enter. Type "exit" or "quit", or send EOF, to leave.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := opts.newService(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()

			sess := session.New(svc)
			result, err := runCompare(cmd.Context(), opts, sess, args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := writeComparison(out, FormatText, result); err != nil {
				return err
			}
			fmt.Fprintln(out, hintStyle.Render("Ask a follow-up question about these devices (\"exit\" to quit)."))

			return chatLoop(cmd, opts, sess, cmd.InOrStdin(), out)
		},
	}
}

func chatLoop(cmd *cobra.Command, opts *Options, sess *session.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, userPromptStyle.Render("> "))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		question := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(question) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		ctx, cancel := opts.requestContext(cmd.Context())
		answer, err := sess.Ask(ctx, question)
		cancel()
		if err != nil {
			switch {
			case errors.Is(err, session.ErrBusy):
				fmt.Fprintln(out, errorStyle.Render(err.Error()))
			case errors.Is(err, app_errors.ErrInputInvalid):
				// In remote mode this is the server's own {error} text.
				fmt.Fprintln(out, errorStyle.Render(client.Message(err)))
			default:
				fmt.Fprintln(out, errorStyle.Render(answerFailedMessage))
			}
			if cmd.Context().Err() != nil {
				return cmd.Context().Err()
			}
			continue
		}
		fmt.Fprintln(out, modelReplyStyle.Render(answer))
	}
}
