package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/share"
	"github.com/taskdeck/taskdeck/internal/validate"
)

// Share command flags.
var (
	shareFlagOrigin string
	shareFlagEmails []string
)

// shareCmd builds a shareable link embedding the collection.
var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Create a shareable link for your tasks",
	Long: `Encode the whole collection (and your color scheme) into a link.
Anyone holding the link can decode and import the tasks; the encoding
is reversible, not secret.

Examples:
  taskdeck share
  taskdeck share --email alice@example.com --email bob@example.com
  taskdeck share decode https://taskdeck.app/share/eyJ0YXNrcyI6...`,
	RunE: runShare,
}

// shareDecodeCmd decodes a share link back into a bundle listing.
var shareDecodeCmd = &cobra.Command{
	Use:   "decode LINK",
	Short: "Decode a share link",
	Args:  cobra.ExactArgs(1),
	RunE:  runShareDecode,
}

func init() {
	shareCmd.Flags().StringVar(&shareFlagOrigin, "origin", share.DefaultOrigin, "Origin for the generated link")
	shareCmd.Flags().StringArrayVar(&shareFlagEmails, "email", nil, "Recipient address (repeatable, validated only)")

	shareCmd.AddCommand(shareDecodeCmd)
	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, args []string) error {
	// Recipient validation is the whole email story: no delivery here.
	for _, addr := range shareFlagEmails {
		if err := validate.Email(addr); err != nil {
			return err
		}
	}

	collection := ctx.Tasks.Load()
	payload := share.NewPayload(collection, ctx.Themes.Get(), time.Now())
	link, err := share.Link(shareFlagOrigin, payload)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(struct {
			Link       string   `json:"link"`
			Recipients []string `json:"recipients,omitempty"`
			Count      int      `json:"count"`
		}{Link: link, Recipients: shareFlagEmails, Count: len(collection)})
	}

	cli := ctx.CLIFormatter()
	cli.Printf("%s\n", link)
	cli.Muted(fmt.Sprintf("Sharing %d task(s). Anyone with this link can view and import them.", len(collection)))
	return nil
}

func runShareDecode(cmd *cobra.Command, args []string) error {
	payload, err := share.Decode(args[0])
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(payload)
	}

	cli := ctx.CLIFormatter()
	cli.Title(fmt.Sprintf("Shared tasks (%d)", len(payload.Tasks)))
	if payload.Theme != "" {
		cli.Muted("Theme: " + string(payload.Theme))
	}
	cli.PrintTasks(payload.Tasks)
	return nil
}
