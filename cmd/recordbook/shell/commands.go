package shell

import "recordbook/internal/command"

// commands is the session vocabulary, in the order help lists it.
func (s *Session) commands() []command.Command {
	return []command.Command{
		{
			Key:         "hello",
			Usage:       "hello",
			Description: "Hear some greeting from me",
			Run:         s.hello,
		},
		{
			Key:         "help",
			Usage:       "help",
			Description: "Show full list of available commands",
			Run:         s.help,
		},
		{
			Key:         "add",
			Usage:       "add <name> <phone> [email] [address...]",
			Description: "Add a new record",
			MinArgs:     2,
			MaxArgs:     command.Variadic,
			Run:         s.addRecord,
		},
		{
			Key:         "add phone",
			Usage:       "add phone <name> <phone>",
			Description: "Add new phone to the existing record",
			MinArgs:     2,
			MaxArgs:     2,
			Run:         s.addPhone,
		},
		{
			Key:         "edit phone",
			Usage:       "edit phone <name> <old phone>",
			Description: "Edit a phone of the existing record",
			MinArgs:     2,
			MaxArgs:     2,
			Run:         s.editPhone,
		},
		{
			Key:         "delete phone",
			Usage:       "delete phone <name> <phone>",
			Description: "Delete the phone of the existing record",
			MinArgs:     2,
			MaxArgs:     2,
			Run:         s.deletePhone,
		},
		{
			Key:         "delete contact",
			Usage:       "delete contact <name>",
			Description: "Delete record completely",
			MinArgs:     1,
			MaxArgs:     1,
			Run:         s.deleteContact,
		},
		{
			Key:         "set bday",
			Usage:       "set bday <name>",
			Description: "Set a BDay for the existing record",
			MinArgs:     1,
			MaxArgs:     1,
			Run:         s.setBirthday,
		},
		{
			Key:         "set email",
			Usage:       "set email <name>",
			Description: "Set an email for the existing record",
			MinArgs:     1,
			MaxArgs:     1,
			Run:         s.setEmail,
		},
		{
			Key:         "set address",
			Usage:       "set address <name>",
			Description: "Set an address for the existing record",
			MinArgs:     1,
			MaxArgs:     1,
			Run:         s.setAddress,
		},
		{
			Key:         "show all",
			Usage:       "show all",
			Description: "Show all the records",
			Run:         s.showAll,
		},
		{
			Key:         "show some",
			Usage:       "show some",
			Description: "Show some number of the records at a time",
			Run:         s.showSome,
		},
		{
			Key:         "show bday",
			Usage:       "show bday <name>",
			Description: "Show a BDay for the existing record",
			MinArgs:     1,
			MaxArgs:     1,
			Run:         s.showBirthday,
		},
		{
			Key:         "show email",
			Usage:       "show email <name>",
			Description: "Show an email for the existing record",
			MinArgs:     1,
			MaxArgs:     1,
			Run:         s.showEmail,
		},
		{
			Key:         "show address",
			Usage:       "show address <name>",
			Description: "Show an address for the existing record",
			MinArgs:     1,
			MaxArgs:     1,
			Run:         s.showAddress,
		},
		{
			Key:         "bday in",
			Usage:       "bday in <days>",
			Description: "Show records that have BDay in set timeframe of days",
			MinArgs:     1,
			MaxArgs:     1,
			Run:         s.birthdaysWithin,
		},
		{
			Key:         "find",
			Usage:       "find <text>",
			Description: "Find records that contain the text",
			MinArgs:     1,
			MaxArgs:     command.Variadic,
			Run:         s.find,
		},
		{
			Key:         "save",
			Usage:       "save",
			Description: "Save changes and keep working",
			Run:         s.save,
		},
		{
			Key:         "not save",
			Usage:       "not save",
			Description: "Close address book without saving",
			Run:         s.closeWithoutSaving,
		},
		{
			Key:         "good bye",
			Usage:       "good bye",
			Description: "Save changes and close address book",
			Run:         s.finish,
		},
		{
			Key:         "close",
			Usage:       "close",
			Description: "Save changes and close address book",
			Run:         s.finish,
		},
	}
}
