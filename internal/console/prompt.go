package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/0xRadioAc7iv/go-contacts/core"
	"github.com/0xRadioAc7iv/go-contacts/internal/record"
)

// readLine shows prompt and returns the next line. Ctrl+C becomes
// errCancelled and end of input io.EOF.
func (c *Console) readLine(prompt string) (string, error) {
	c.in.SetPrompt(prompt)

	input, err := c.in.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			fmt.Fprintln(c.out)
			return "", errCancelled
		}
		return "", err
	}

	return input, nil
}

// promptChoice asks until the user enters a number in [min, max].
func (c *Console) promptChoice(min, max int) (int, error) {
	for {
		input, err := c.readLine("\n\nChoice? ")
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(input))
		if err == nil && choice >= min && choice <= max {
			fmt.Fprintln(c.out)
			return choice, nil
		}
	}
}

// promptField asks for one field. In edit mode the previous value is shown
// and an empty answer returns "" to keep it. Values that do not fit a slot
// are refused and asked again.
func (c *Console) promptField(f record.Field, prev string, edit bool) (string, error) {
	prompt := f.Label() + ": "
	if edit {
		shown := prev
		if shown == "" {
			shown = "<empty>"
		}
		prompt = fmt.Sprintf("Edit %s  (default: %s): ", f.Label(), shown)
	}

	for {
		value, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}

		if edit && value == "" {
			return "", nil
		}

		if err := record.ValidateField(value); err != nil {
			c.report(err)
			continue
		}

		return value, nil
	}
}

// dumpContactList prints the enumerated list and reports whether it had
// any entries.
func (c *Console) dumpContactList() bool {
	entries := c.store.List()
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "[No Contacts Found]")
		return false
	}

	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(c.out)
		}
		fmt.Fprintf(c.out, "%d)  %s, %s", e.Index, e.LastName, e.FirstName)
	}

	return true
}

func (c *Console) dumpContact(contact record.Record) {
	c.hdr("Contact Info")

	for _, f := range record.Fields[1:] {
		fmt.Fprintf(c.out, "%s: %s\n", f.Label(), contact.Get(f))
	}
}

func (c *Console) hdr(title string) {
	fmt.Fprint(c.out, title, line)
}

func (c *Console) msg(text string) {
	fmt.Fprint(c.out, "\n", text, "\n")
}

func (c *Console) report(err error) {
	fmt.Fprintf(c.out, "[%s]\n", describe(err))
}

// describe turns a Store error into the text shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, core.ErrCapacityExceeded):
		return "Maximum Contacts Reached"
	case errors.Is(err, core.ErrFieldTooLong):
		return fmt.Sprintf("Field too long, at most %d bytes", record.MaxFieldLength)
	case errors.Is(err, core.ErrInvalidField):
		return "Field contains a NUL character"
	case errors.Is(err, core.ErrIndexOutOfRange):
		return "No such contact"
	case errors.Is(err, core.ErrTruncatedFile):
		return "Contacts file is truncated"
	case errors.Is(err, core.ErrMalformedRecord):
		return "Contacts file is corrupt"
	case errors.Is(err, core.ErrFileOpenFailed):
		return "Could not open contacts file"
	case errors.Is(err, io.ErrShortWrite):
		return "Contacts file was only partly written"
	}
	return err.Error()
}
