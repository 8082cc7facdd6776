package interactive

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
)

// SelectNetwork prompts the user to select a network, starting on current.
func SelectNetwork(current token.Network) (token.Network, error) {
	options := NetworkOptions()
	cursor := 0
	for i, o := range options {
		if o.Name == current.String() {
			cursor = i
		}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ .Name | cyan }} - {{ .Description | faint }}",
		Inactive: "  {{ .Name }} - {{ .Description | faint }}",
		Selected: "✓ {{ .Name | green }} selected",
	}

	prompt := promptui.Select{
		Label:     "Select network",
		Items:     options,
		Templates: templates,
		Size:      4,
		CursorPos: cursor,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return "", handleInterruptError(err)
	}

	return token.Network(options[index].Name), nil
}

// ApproveConnect asks the user to approve connecting publicKey. It
// satisfies wallet.Approver.
func ApproveConnect(_ context.Context, provider, publicKey string) (bool, error) {
	fmt.Printf("\n%s wants to connect:\n", provider)
	fmt.Printf("  Public key: %s\n\n", publicKey)
	return confirm("Connect this wallet")
}

// ConfirmForm prints the summary of f and asks to submit it.
func ConfirmForm(f token.Form) (bool, error) {
	fmt.Print(Summary(f))
	fmt.Println()
	return confirm("Submit token creation request")
}

func confirm(label string) (bool, error) {
	return runConfirm(label, "y")
}

// promptYesNo is a confirm that defaults to no.
func promptYesNo(label string) (bool, error) {
	return runConfirm(label, "")
}

func runConfirm(label, def string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Default:   def,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, handleInterruptError(err)
	}

	return true, nil
}

func promptField(label, success, def string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  def,
		Validate: validate,
		Templates: &promptui.PromptTemplates{
			Prompt:  "{{ . }}: ",
			Valid:   "{{ . | green }}: ",
			Invalid: "{{ . | red }}: ",
			Success: "✓ " + success + ": ",
		},
	}

	result, err := prompt.Run()
	if err != nil {
		return "", handleInterruptError(err)
	}

	return strings.TrimSpace(result), nil
}

// validateRequired rejects blank input.
func validateRequired(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("this field is required")
	}
	return nil
}

// validateSymbol keeps symbols short and free of spaces.
func validateSymbol(input string) error {
	input = strings.TrimSpace(input)
	if err := validateRequired(input); err != nil {
		return err
	}
	if strings.Contains(input, " ") {
		return fmt.Errorf("symbol cannot contain spaces")
	}
	if len(input) > 10 {
		return fmt.Errorf("symbol too long (max 10 characters)")
	}
	return nil
}

// validateSupply mirrors the form validator for early feedback.
func validateSupply(input string) error {
	v, err := strconv.ParseUint(strings.TrimSpace(input), 10, 64)
	if err != nil || v == 0 {
		return fmt.Errorf("supply must be a whole number greater than 0")
	}
	return nil
}

// validateDecimals accepts an empty value (the default) or 0-9.
func validateDecimals(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	d, err := strconv.Atoi(input)
	if err != nil || d < token.MinDecimals || d > token.MaxDecimals {
		return fmt.Errorf("decimals must be between %d and %d", token.MinDecimals, token.MaxDecimals)
	}
	return nil
}
