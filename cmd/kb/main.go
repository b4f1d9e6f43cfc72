package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"kb-go/internal/app"
	"kb-go/internal/config"
	"kb-go/internal/encryption"
	"kb-go/internal/kanban"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates a KanbanApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "AddCard", "FinishDrag").
func newApp(operation string) (*app.KanbanApp, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewKanbanApp(cfg, operation, promptPassphrase)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// promptPassphrase reads a passphrase from the terminal without echo.
func promptPassphrase() (string, error) {
	fmt.Fprint(os.Stderr, "Passphrase: ")
	pass, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(pass), nil
}

var rootCmd = &cobra.Command{
	Use:   "kb",
	Short: "Local kanban board",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		// Generate a new profile ID
		profileID := uuid.New().String()

		cfg := config.NewConfig(profileID, defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Profile ID: %s\n", profileID)
		fmt.Printf("Base Dir:   %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Profile ID: %s\n", cfg.ProfileID)
		fmt.Printf("Base Dir:   %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:    %s\n", cfg.LogDir)
		fmt.Printf("User Name:  %s\n", cfg.UserName)
		fmt.Printf("Store:      %s\n", cfg.Store.Type)
		fmt.Printf("Encryption: %v\n", cfg.Encryption.Enabled)
		return nil
	},
}

// login command (mock auth: records a display name, nothing more)
var loginCmd = &cobra.Command{
	Use:   "login NAME",
	Short: "Sign in with a display name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("getting defaults: %w", err)
		}
		if err := config.SetUserName(defaults["config_path"], args[0]); err != nil {
			return err
		}
		fmt.Printf("Signed in as %s\n", args[0])
		return nil
	},
}

// board command
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "View and reset the board",
}

var boardShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the board",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ShowBoard")
		if err != nil {
			return err
		}
		defer a.Close()

		board, err := a.Service().Board()
		if err != nil {
			return err
		}

		for _, col := range board.Columns {
			fmt.Printf("%s  %s (%s)\n", col.ID, col.Title, col.Color)
			for _, card := range board.ColumnCards(col.ID) {
				line := fmt.Sprintf("  %s  [%s] %s", card.ID, card.Priority, card.Title)
				if len(card.Tags) > 0 {
					line += "  #" + strings.Join(card.Tags, " #")
				}
				fmt.Println(line)
			}
		}
		if len(board.Users) > 0 {
			fmt.Println("users:")
			for _, u := range board.Users {
				fmt.Printf("  %s  %s\n", u.ID, u.Name)
			}
		}
		return nil
	},
}

var boardResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the board to seed data",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ResetBoard")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().Reset(); err != nil {
			return err
		}
		fmt.Println("Board reset.")
		return nil
	},
}

// column command
var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Manage columns",
}

var columnAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddColumn")
		if err != nil {
			return err
		}
		defer a.Close()

		col, err := a.Service().AddColumn(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", col.ID)
		return nil
	},
}

var columnEditCmd = &cobra.Command{
	Use:   "edit COLUMN_ID",
	Short: "Edit a column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("EditColumn")
		if err != nil {
			return err
		}
		defer a.Close()

		board, err := a.Service().Board()
		if err != nil {
			return err
		}
		i := board.FindColumn(args[0])
		if i < 0 {
			return fmt.Errorf("column not found: %s", args[0])
		}

		col := board.Columns[i]
		if cmd.Flags().Changed("title") {
			col.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("color") {
			col.Color, _ = cmd.Flags().GetString("color")
		}

		return a.Service().EditColumn(col)
	},
}

var columnRmCmd = &cobra.Command{
	Use:   "rm COLUMN_ID",
	Short: "Delete a column and all its cards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("DeleteColumn")
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Service().DeleteColumn(args[0])
	},
}

// card command
var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage cards",
}

var cardAddCmd = &cobra.Command{
	Use:   "add COLUMN_ID",
	Short: "Add a card to a column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddCard")
		if err != nil {
			return err
		}
		defer a.Close()

		card, err := a.Service().AddCard(args[0])
		if err != nil {
			return err
		}
		if card == nil {
			return fmt.Errorf("column not found: %s", args[0])
		}
		fmt.Printf("%s\n", card.ID)
		return nil
	},
}

var cardEditCmd = &cobra.Command{
	Use:   "edit CARD_ID",
	Short: "Edit a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SaveCard")
		if err != nil {
			return err
		}
		defer a.Close()

		board, err := a.Service().Board()
		if err != nil {
			return err
		}
		i := board.FindCard(args[0])
		if i < 0 {
			return fmt.Errorf("card not found: %s", args[0])
		}

		card := board.Cards[i].Clone()
		if cmd.Flags().Changed("title") {
			card.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("description") {
			card.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("priority") {
			card.Priority, _ = cmd.Flags().GetString("priority")
		}

		return a.Service().SaveCard(card)
	},
}

var cardRmCmd = &cobra.Command{
	Use:   "rm CARD_ID",
	Short: "Delete a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("DeleteCard")
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Service().DeleteCard(args[0])
	},
}

var cardMoveCmd = &cobra.Command{
	Use:   "move CARD_ID TARGET_ID",
	Short: "Drag a card onto a column or another card",
	Long: `Move a card by simulating a drag gesture. TARGET_ID may be a column
(the card moves to the end of that column) or another card (the card moves to
that card's column, or to its position when both share a column).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("FinishDrag")
		if err != nil {
			return err
		}
		defer a.Close()

		var drag kanban.DragState
		drag.Start(args[0])
		return a.Service().FinishDrag(&drag, args[1])
	},
}

// tag command
var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage card tags",
}

var tagAddCmd = &cobra.Command{
	Use:   "add CARD_ID TAG",
	Short: "Add a tag to a card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddTag")
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Service().AddTag(args[0], args[1])
	},
}

var tagRmCmd = &cobra.Command{
	Use:   "rm CARD_ID TAG",
	Short: "Remove a tag from a card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemoveTag")
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Service().RemoveTag(args[0], args[1])
	},
}

// comment command
var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Manage card comments",
}

var commentAddCmd = &cobra.Command{
	Use:   "add CARD_ID TEXT",
	Short: "Add a comment to a card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddComment")
		if err != nil {
			return err
		}
		defer a.Close()

		author := a.CurrentUser()
		if author == "" {
			return fmt.Errorf("no display name configured: run `kb login NAME` first")
		}

		_, err = a.Service().AddComment(args[0], args[1], author)
		return err
	},
}

// user command
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage card assignees",
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List board users",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListUsers")
		if err != nil {
			return err
		}
		defer a.Close()

		board, err := a.Service().Board()
		if err != nil {
			return err
		}
		for _, u := range board.Users {
			fmt.Printf("%s  %s\n", u.ID, u.Name)
		}
		return nil
	},
}

var userAssignCmd = &cobra.Command{
	Use:   "assign CARD_ID USER_ID",
	Short: "Assign a user to a card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AssignUser")
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Service().AssignUser(args[0], args[1])
	},
}

var userInviteCmd = &cobra.Command{
	Use:   "invite CARD_ID EMAIL",
	Short: "Invite a user to a card (mock)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("InviteUser")
		if err != nil {
			return err
		}
		defer a.Close()

		a.Service().InviteUser(args[0], args[1])
		return nil
	},
}

// attach command
var attachCmd = &cobra.Command{
	Use:   "attach",
	Short: "Manage card attachments",
}

var attachAddCmd = &cobra.Command{
	Use:   "add CARD_ID NAME",
	Short: "Add an attachment to a card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddAttachment")
		if err != nil {
			return err
		}
		defer a.Close()

		_, err = a.Service().AddAttachment(args[0], args[1])
		return err
	},
}

var attachRmCmd = &cobra.Command{
	Use:   "rm CARD_ID ATTACHMENT_ID",
	Short: "Remove an attachment from a card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemoveAttachment")
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Service().RemoveAttachment(args[0], args[1])
	},
}

// video command
var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Manage card video links",
}

var videoAddCmd = &cobra.Command{
	Use:   "add CARD_ID URL",
	Short: "Add a video link to a card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddVideoLink")
		if err != nil {
			return err
		}
		defer a.Close()

		_, err = a.Service().AddVideoLink(args[0], args[1])
		return err
	},
}

var videoRmCmd = &cobra.Command{
	Use:   "rm CARD_ID VIDEO_ID",
	Short: "Remove a video link from a card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemoveVideoLink")
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Service().RemoveVideoLink(args[0], args[1])
	},
}

// crypt command
var cryptCmd = &cobra.Command{
	Use:   "crypt",
	Short: "Manage board encryption",
}

var cryptInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate encryption keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("getting defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}

		enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
		if err != nil {
			return fmt.Errorf("creating encryptor: %w", err)
		}
		if enc.IsConfigured() {
			return fmt.Errorf("encryption keys already exist")
		}

		pass, err := promptPassphrase()
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stderr, "Confirm passphrase: ")
		confirm, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return err
		}
		if pass != string(confirm) {
			return fmt.Errorf("passphrases do not match")
		}

		if err := enc.Setup(pass); err != nil {
			return fmt.Errorf("generating keys: %w", err)
		}

		fmt.Printf("Keys written to %s\n", cfg.Encryption.PublicKeyPath)
		fmt.Println("Set enabled = true in the [encryption] config section to encrypt the board.")
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// board subcommands
	boardCmd.AddCommand(boardShowCmd)
	boardCmd.AddCommand(boardResetCmd)

	// column subcommands
	columnCmd.AddCommand(columnAddCmd)
	columnCmd.AddCommand(columnEditCmd)
	columnEditCmd.Flags().String("title", "", "New column title")
	columnEditCmd.Flags().String("color", "", "New column color")
	columnCmd.AddCommand(columnRmCmd)

	// card subcommands
	cardCmd.AddCommand(cardAddCmd)
	cardCmd.AddCommand(cardEditCmd)
	cardEditCmd.Flags().String("title", "", "New card title")
	cardEditCmd.Flags().String("description", "", "New card description")
	cardEditCmd.Flags().String("priority", "", "New priority: low, medium or high")
	cardCmd.AddCommand(cardRmCmd)
	cardCmd.AddCommand(cardMoveCmd)

	// tag subcommands
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRmCmd)

	// comment subcommands
	commentCmd.AddCommand(commentAddCmd)

	// user subcommands
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userAssignCmd)
	userCmd.AddCommand(userInviteCmd)

	// attach subcommands
	attachCmd.AddCommand(attachAddCmd)
	attachCmd.AddCommand(attachRmCmd)

	// video subcommands
	videoCmd.AddCommand(videoAddCmd)
	videoCmd.AddCommand(videoRmCmd)

	// crypt subcommands
	cryptCmd.AddCommand(cryptInitCmd)

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(columnCmd)
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(attachCmd)
	rootCmd.AddCommand(videoCmd)
	rootCmd.AddCommand(cryptCmd)
}
