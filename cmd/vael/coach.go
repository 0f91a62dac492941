// ABOUTME: CLI command for chatting with the coach backend.
// ABOUTME: One-shot questions or an interactive session with a transcript.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vael/internal/coach"
)

var coachInteractive bool

var coachCmd = &cobra.Command{
	Use:   "coach [message]",
	Short: "Chat with the AI coach",
	Long: `Send a message to the coach backend and print its reply.

The backend URL resolves from config (coach_url), then $VAEL_COACH_URL,
then the local default. When the backend is unreachable the coach
degrades to a canned offline reply instead of failing.

EXAMPLES:

  vael coach "how should I deload this week?"
  vael coach -i     # interactive session, empty line to quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := coach.NewClient(cfg.GetCoachURL(), logger)

		if coachInteractive {
			return runCoachSession(cmd, client)
		}
		if len(args) == 0 {
			return fmt.Errorf("give a message or use -i for an interactive session")
		}

		reply := client.AskWithFallback(cmd.Context(), args[0])
		fmt.Println(reply)
		return nil
	},
}

func runCoachSession(cmd *cobra.Command, client *coach.Client) error {
	conv := coach.NewConversation(client)
	scanner := bufio.NewScanner(os.Stdin)
	prompt := color.New(color.Bold).Sprint("you> ")

	fmt.Println("Coach session. Empty line to quit.")
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			break
		}
		reply := conv.Send(cmd.Context(), text)
		fmt.Printf("%s %s\n", color.CyanString("coach>"), reply.Text)
	}
	return scanner.Err()
}

func init() {
	coachCmd.Flags().BoolVarP(&coachInteractive, "interactive", "i", false, "interactive session")
	rootCmd.AddCommand(coachCmd)
}
