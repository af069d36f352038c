// Package console is the interactive menu in front of a core.Store.
//
// It owns every user-facing string: headers, prompts and the messages
// printed for each Store error. The Store itself never prints.
package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/0xRadioAc7iv/go-contacts/core"
	"github.com/0xRadioAc7iv/go-contacts/internal/record"
	"github.com/0xRadioAc7iv/go-contacts/internal/utils"
)

// LineReader is the part of *readline.Instance the console needs.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Completer offers menu commands and field names for one-line adds.
var Completer = readline.NewPrefixCompleter(
	readline.PcItem("add",
		readline.PcItem("first_name="),
		readline.PcItem("last_name="),
		readline.PcItem("country="),
		readline.PcItem("state="),
		readline.PcItem("address_1="),
		readline.PcItem("address_2="),
		readline.PcItem("zip="),
		readline.PcItem("home_phone="),
		readline.PcItem("work_phone="),
	),
	readline.PcItem("edit"),
	readline.PcItem("find"),
	readline.PcItem("load"),
	readline.PcItem("backup"),
	readline.PcItem("restore"),
	readline.PcItem("help"),
	readline.PcItem("quit"),
)

const line = "\n---------------------------------------------\n"

const menuText = `1) Add New
2) Edit Saved Contact
3) Find
4) Load from Disk
5) Quit`

const helpText = `
Menu choices:
  1-5                        - Pick an entry from the menu

Commands:
  add                        - Same as 1, prompts for every field
  add field=value ...        - Add in one line, e.g.
                               add first_name="Mary Ann" last_name=Lee zip=90210
  edit                       - Same as 2
  find                       - Same as 3
  load                       - Same as 4, replaces contacts in memory
  backup PATH                - Write a compressed snapshot of all contacts
  restore PATH               - Replace all contacts with a snapshot and save
  help                       - Show this help message
  quit                       - Same as 5

Fields: first_name, last_name, country, state, address_1, address_2,
        zip, home_phone, work_phone, id
`

// errCancelled is returned by prompts when the user presses Ctrl+C.
var errCancelled = errors.New("cancelled")

// Console drives the menu loop. It is not safe for concurrent use.
type Console struct {
	store *core.Store
	in    LineReader
	out   io.Writer

	// NewID fills the id slot of added contacts that have none.
	NewID func() string
}

func New(store *core.Store, in LineReader, out io.Writer) *Console {
	return &Console{
		store: store,
		in:    in,
		out:   out,
		NewID: uuid.NewString,
	}
}

// Run shows the menu until the user quits or input ends. Store errors are
// reported and the menu comes back; only input errors end the loop.
func (c *Console) Run() error {
	for {
		c.hdr("\nContacts Database Menu")
		fmt.Fprint(c.out, menuText)

		quit, err := c.menu()
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(c.out, "Goodbye.")
				return nil
			}
			if err == errCancelled {
				continue
			}
			return err
		}

		if quit {
			fmt.Fprintln(c.out, "Goodbye.")
			return nil
		}
	}
}

// menu reads one menu choice or command and runs it.
func (c *Console) menu() (quit bool, err error) {
	for {
		input, err := c.readLine("\n\nChoice? ")
		if err != nil {
			return false, err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		fmt.Fprintln(c.out)

		if n, convErr := strconv.Atoi(input); convErr == nil {
			switch n {
			case 1:
				return false, c.add()
			case 2:
				return false, c.edit()
			case 3:
				return false, c.find()
			case 4:
				c.load()
				return false, nil
			case 5:
				return true, nil
			}
			continue
		}

		cmd, args, err := utils.SplitStringIntoCommandAndArguments(input)
		if err != nil {
			c.msg("Could not parse command: " + err.Error())
			continue
		}

		switch cmd {
		case "add":
			if len(args) == 0 {
				return false, c.add()
			}
			c.addInline(args)
		case "edit":
			return false, c.edit()
		case "find":
			return false, c.find()
		case "load":
			c.load()
		case "backup":
			c.backup(args)
		case "restore":
			c.restore(args)
		case "help":
			fmt.Fprint(c.out, helpText)
		case "quit", "exit":
			return true, nil
		default:
			c.msg("Unknown command \"" + cmd + "\". Type help for usage.")
			continue
		}
		return false, nil
	}
}

func (c *Console) add() error {
	c.hdr("Add New Contact")

	if c.store.Len() >= core.MaxContacts {
		fmt.Fprintln(c.out, "[Maximum Contacts Reached]")
		return nil
	}

	var contact record.Record
	for _, f := range record.Fields[1:] {
		value, err := c.promptField(f, "", false)
		if err != nil {
			return err
		}
		contact.Set(f, value)
	}

	c.addContact(contact)
	return nil
}

// addInline handles `add field=value ...`.
func (c *Console) addInline(args []string) {
	values, err := utils.ParseAssignments(args)
	if err != nil {
		c.msg(err.Error())
		return
	}

	var contact record.Record
	for name, value := range values {
		f, ok := record.FieldByName(name)
		if !ok {
			c.msg("Unknown field \"" + name + "\".")
			return
		}
		contact.Set(f, value)
	}

	c.addContact(contact)
}

func (c *Console) edit() error {
	c.hdr("Edit Contact")

	if !c.dumpContactList() {
		return nil
	}

	choice, err := c.promptChoice(1, c.store.Len())
	if err != nil {
		return err
	}

	current, err := c.store.Get(choice)
	if err != nil {
		c.report(err)
		return nil
	}

	c.hdr("Press <ENTER> to keep default.")

	var update record.Record
	for _, f := range record.Fields[1:] {
		value, err := c.promptField(f, current.Get(f), true)
		if err != nil {
			return err
		}
		update.Set(f, value)
	}

	if err := c.store.Edit(choice, update); err != nil {
		c.report(err)
		return nil
	}

	c.msg("Contact Info Updated.")
	return nil
}

func (c *Console) find() error {
	c.hdr("Find Contact")

	if !c.dumpContactList() {
		return nil
	}

	choice, err := c.promptChoice(1, c.store.Len())
	if err != nil {
		return err
	}

	contact, err := c.store.Get(choice)
	if err != nil {
		c.report(err)
		return nil
	}

	c.dumpContact(contact)
	return nil
}

func (c *Console) load() {
	n, err := c.store.Load()
	if err != nil {
		c.msg("Failed reading contacts: " + describe(err) + ". Contacts in memory were cleared.")
		return
	}

	for _, e := range c.store.List() {
		fmt.Fprintf(c.out, "Read contact \"%s, %s\".\n", e.LastName, e.FirstName)
	}
	c.msg(fmt.Sprintf("Loaded %d contacts.", n))
}

func (c *Console) backup(args []string) {
	if len(args) != 1 {
		c.msg("Usage: backup PATH")
		return
	}

	if err := c.store.Backup(args[0]); err != nil {
		c.msg("Backup failed: " + err.Error())
		return
	}
	c.msg("Backup written to " + args[0] + ".")
}

func (c *Console) restore(args []string) {
	if len(args) != 1 {
		c.msg("Usage: restore PATH")
		return
	}

	n, err := c.store.Restore(args[0])
	if err != nil {
		c.msg("Restore failed: " + err.Error())
		return
	}
	c.msg(fmt.Sprintf("Restored %d contacts.", n))
}

// addContact fills an empty id and hands the contact to the Store.
func (c *Console) addContact(contact record.Record) {
	if contact.ID == "" && c.NewID != nil {
		contact.ID = c.NewID()
	}

	if err := c.store.Add(contact); err != nil {
		c.report(err)
		return
	}

	c.msg("Contact added.")
}
