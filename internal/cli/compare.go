package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	app_errors "device-compare/internal/errors"
	"device-compare/internal/model"
	"device-compare/internal/session"
)

// User-facing failure messages.
const (
	missingNamesMessage  = "Please enter both device names."
	compareFailedMessage = "Failed to fetch comparison. The model may be unavailable. Please try again later."
	answerFailedMessage  = "Sorry, I couldn't answer that. Please try again."
)

func newCompareCommand(opts *Options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "compare <device1> <device2>",
		Short: "Compare two devices side by side",
		Args:  cobra.ExactArgs(2),
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
			return writeComparison(cmd.OutOrStdout(), format, result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "Output format: text, json or yaml")
	return cmd
}

func runCompare(ctx context.Context, opts *Options, sess *session.Session, device1, device2 string) (*model.ComparisonResult, error) {
	ctx, cancel := opts.requestContext(ctx)
	defer cancel()

	result, err := sess.Compare(ctx, device1, device2)
	if err != nil {
		return nil, compareError(err)
	}
	return result, nil
}

// compareError turns a comparison failure into the message shown to the user.
func compareError(err error) error {
	if errors.Is(err, app_errors.ErrInputInvalid) {
		return errors.New(missingNamesMessage)
	}
	return fmt.Errorf("%s (%s)", compareFailedMessage, app_errors.Kind(err))
}
