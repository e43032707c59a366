package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"recordbook/internal/book"
	"recordbook/internal/command"
	"recordbook/internal/contact"
	"recordbook/internal/field"
)

const (
	greeting       = "How can I help you?"
	msgGoodBye     = "Good bye!"
	msgNotSaved    = "Will NOT save! BB!"
	msgSaved       = "The data is saved."
	msgSaveFailed  = "Data could not be saved. Check the path to the file."
	msgEmptyBook   = "Your list is empty!"
	msgNoRecord    = "No such record!"
	msgNoPhone     = "No such phone record!"
	msgNothing     = "Nothing!"
	msgNobody      = "Sorry! Seems like nobody has BDays in the set timeframe!"
	msgNotANumber  = "Timeframe should be a number!"
	msgNegative    = "Timeframe could not be a negative number!"
	msgBookEnd     = "This was the end of the address book!"
	msgPageSize    = "How much records to show at a time? "
	msgNextPage    = "Show next part? (Y/N): "
	msgNotUnderstd = "I do not understand the command!"
)

func (s *Session) hello(context.Context, []string) (command.Result, error) {
	s.println(greeting)
	return command.Continue, nil
}

func (s *Session) help(context.Context, []string) (command.Result, error) {
	s.print(s.renderHelp())
	return command.Continue, nil
}

// addRecord creates a record from a name and a phone. Trailing tokens holding
// "@" become the email, the rest are joined into the address.
func (s *Session) addRecord(_ context.Context, args []string) (command.Result, error) {
	name := args[0]
	if _, err := s.book.Get(name); err == nil {
		return command.Continue, command.Noticef("Record for %s already exists! Use 'add phone' to extend it.", name)
	}

	phone, err := field.ParsePhone(args[1])
	if err != nil {
		return command.Continue, err
	}
	r, err := contact.New(name, phone)
	if err != nil {
		return command.Continue, err
	}

	var address []string
	for _, tok := range args[2:] {
		if strings.Contains(tok, "@") {
			if _, err := r.SetEmail(tok); err != nil {
				return command.Continue, err
			}
			continue
		}
		address = append(address, tok)
	}
	r.SetAddress(strings.Join(address, " "))

	if err := s.book.Add(r); err != nil {
		return command.Continue, err
	}
	s.success("Added record for %s with %s, email '%s', and address '%s' my lord.",
		r.Name(), phone, r.Email(), r.Address())
	return command.Continue, nil
}

func (s *Session) addPhone(_ context.Context, args []string) (command.Result, error) {
	r, err := s.book.Get(args[0])
	if err != nil {
		return command.Continue, err
	}
	p, err := r.AddPhone(args[1])
	switch {
	case errors.Is(err, contact.ErrPhoneExists):
		return command.Continue, command.Noticef("%s is already recorded for %s", p, r.Name())
	case err != nil:
		return command.Continue, err
	}
	s.success("%s record was successfully added for %s", p, r.Name())
	return command.Continue, nil
}

func (s *Session) editPhone(_ context.Context, args []string) (command.Result, error) {
	r, err := s.book.Get(args[0])
	if err != nil {
		return command.Continue, err
	}
	old, updated, err := r.EditPhone(args[1], func() (string, error) {
		return s.ask("Please input the new phone number: ")
	})
	switch {
	case errors.Is(err, contact.ErrPhoneNotFound):
		return command.Continue, command.Noticef("%s phone number was not found for %s!", args[1], r.Name())
	case errors.Is(err, contact.ErrPhoneExists):
		return command.Continue, command.Noticef("%s is already recorded for %s", updated, r.Name())
	case err != nil:
		return command.Continue, err
	}
	s.success("%s was successfully changed to %s for %s", old, updated, r.Name())
	return command.Continue, nil
}

func (s *Session) deletePhone(_ context.Context, args []string) (command.Result, error) {
	r, err := s.book.Get(args[0])
	if err != nil {
		return command.Continue, err
	}
	p, err := r.DeletePhone(args[1])
	switch {
	case errors.Is(err, contact.ErrPhoneNotFound):
		return command.Continue, command.Notice(msgNoPhone)
	case errors.Is(err, contact.ErrLastPhone):
		return command.Continue, command.Noticef("%s is the last phone of %s! Use 'delete contact' to remove the record.", p, r.Name())
	case err != nil:
		return command.Continue, err
	}
	s.success("%s was successfully deleted for %s", p, r.Name())
	return command.Continue, nil
}

func (s *Session) deleteContact(_ context.Context, args []string) (command.Result, error) {
	r, err := s.book.Delete(args[0])
	if errors.Is(err, book.ErrNotFound) {
		return command.Continue, command.Notice(msgNoRecord)
	}
	if err != nil {
		return command.Continue, err
	}
	s.success("Removed record for %s, my lord.", r.Name())
	return command.Continue, nil
}

func (s *Session) setBirthday(_ context.Context, args []string) (command.Result, error) {
	r, err := s.book.Get(args[0])
	if err != nil {
		return command.Continue, err
	}
	raw, err := s.ask(`Please set the birthday date like "10 January 2020": `)
	if err != nil {
		return command.Continue, err
	}
	b, err := r.SetBirthday(raw)
	if err != nil {
		return command.Continue, err
	}
	s.success("%s BDay record was added for %s!", b, r.Name())
	return command.Continue, nil
}

func (s *Session) setEmail(_ context.Context, args []string) (command.Result, error) {
	r, err := s.book.Get(args[0])
	if err != nil {
		return command.Continue, err
	}
	raw, err := s.ask(`Please set the email like "myemail@google.com": `)
	if err != nil {
		return command.Continue, err
	}
	if strings.TrimSpace(raw) == "" {
		s.println(s.styles.Muted.Render("Email was left unchanged."))
		return command.Continue, nil
	}
	e, err := r.SetEmail(raw)
	if err != nil {
		return command.Continue, err
	}
	s.success("%s email record was added for %s!", e, r.Name())
	return command.Continue, nil
}

func (s *Session) setAddress(_ context.Context, args []string) (command.Result, error) {
	r, err := s.book.Get(args[0])
	if err != nil {
		return command.Continue, err
	}
	raw, err := s.ask("Please set the address: ")
	if err != nil {
		return command.Continue, err
	}
	a := r.SetAddress(raw)
	s.success("Address %s was set successfully for %s!", a, r.Name())
	return command.Continue, nil
}

func (s *Session) showAll(context.Context, []string) (command.Result, error) {
	records := s.book.All()
	if len(records) == 0 {
		s.println(msgEmptyBook)
		return command.Continue, nil
	}
	for _, r := range records {
		s.printf(`Phones for %s (email = "%s", address = "%s", BDay = "%s"):`,
			s.styles.Title.Render(r.Name()), r.Email(), r.Address(), r.Birthday())
		for i, p := range r.Phones() {
			s.printf("%d) - %s", i+1, p)
		}
	}
	return command.Continue, nil
}

// showSome pages through the book, asking before each further page.
func (s *Session) showSome(context.Context, []string) (command.Result, error) {
	raw, err := s.ask(msgPageSize)
	if err != nil {
		return command.Continue, err
	}
	size, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return command.Continue, fmt.Errorf("%w: page size %q", command.ErrArgumentType, raw)
	}
	cursor, err := s.book.Pages(size)
	if errors.Is(err, book.ErrPageSize) {
		return command.Continue, command.Notice("Page size should be a positive number!")
	}
	if err != nil {
		return command.Continue, err
	}

	s.println(separator)
	if cursor.Clamped() {
		s.printf("Seems like there is only %d items in the book!", cursor.Size())
	}

	for {
		for _, r := range cursor.Next() {
			s.printf("%s| Phones: %s | BDay: %s | Email: %s | Address: %s",
				r.Name(), r.PhoneList(), r.Birthday(), r.Email(), r.Address())
		}
		if !cursor.HasMore() {
			s.println(msgBookEnd)
			return command.Continue, nil
		}
		s.println(separator)

		if !s.ui.PagePrompt {
			continue
		}
		more, err := s.askNextPage()
		if err != nil {
			return command.Continue, err
		}
		if !more {
			return command.Continue, nil
		}
		s.println(separator)
	}
}

func (s *Session) askNextPage() (bool, error) {
	for {
		answer, err := s.ask(msgNextPage)
		if err != nil {
			return false, err
		}
		switch command.Fold(strings.TrimSpace(answer)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		s.println(msgNotUnderstd)
	}
}

func (s *Session) showBirthday(_ context.Context, args []string) (command.Result, error) {
	r, err := s.book.Get(args[0])
	if err != nil {
		return command.Continue, err
	}
	if !r.Birthday().IsSet() {
		return command.Continue, command.Noticef("BDay record is not set for %s!", r.Name())
	}
	s.printf("%s's birthday will be in %d days! (%s)", r.Name(), r.Birthday().DaysUntil(s.now()), r.Birthday())
	return command.Continue, nil
}

func (s *Session) showEmail(_ context.Context, args []string) (command.Result, error) {
	r, err := s.book.Get(args[0])
	if err != nil {
		return command.Continue, err
	}
	if !r.Email().IsSet() {
		s.println("It is EMPTY!")
		return command.Continue, nil
	}
	s.printf("It is %s", r.Email())
	return command.Continue, nil
}

func (s *Session) showAddress(_ context.Context, args []string) (command.Result, error) {
	r, err := s.book.Get(args[0])
	if err != nil {
		return command.Continue, err
	}
	if !r.Address().IsSet() {
		s.printf("No address is set for %s", r.Name())
		return command.Continue, nil
	}
	s.printf("Address for %s: %s", r.Name(), r.Address())
	return command.Continue, nil
}

func (s *Session) birthdaysWithin(_ context.Context, args []string) (command.Result, error) {
	days, err := strconv.Atoi(args[0])
	if err != nil {
		return command.Continue, command.Notice(msgNotANumber)
	}
	if days < 0 {
		return command.Continue, command.Notice(msgNegative)
	}

	s.printf("You wanted to see Bdays in %d days! Here we go: ", days)
	upcoming := s.book.UpcomingBirthdays(days, s.now())
	if len(upcoming) == 0 {
		s.println(msgNobody)
		return command.Continue, nil
	}
	for _, u := range upcoming {
		r := u.Record
		s.println(strings.Repeat("=", 10))
		s.printf("%s will have a BDay in %d days! (%s)", r.Name(), u.Days, r.Birthday())
		s.printf("Their data: phones - %s, email - %s, address - %s", r.PhoneList(), r.Email(), r.Address())
	}
	return command.Continue, nil
}

// find searches with every argument joined by single spaces.
func (s *Session) find(_ context.Context, args []string) (command.Result, error) {
	needle := strings.Join(args, " ")
	s.printf("Looking for %s. Found...", needle)

	found := s.book.Find(needle)
	if len(found) == 0 {
		s.println(msgNothing)
		return command.Continue, nil
	}
	for _, r := range found {
		s.printf("Name: %s | Phones: %s | Birthday: %s | Email: %s | Address: %s",
			r.Name(), r.PhoneList(), r.Birthday(), r.Email(), r.Address())
	}
	return command.Continue, nil
}

func (s *Session) persist(ctx context.Context) error {
	if err := s.book.Save(ctx); err != nil {
		s.logger.Error("save failed", zap.Error(err))
		return command.Notice(msgSaveFailed)
	}
	s.logger.Info("book saved", zap.Int("records", s.book.Len()))
	return nil
}

func (s *Session) save(ctx context.Context, _ []string) (command.Result, error) {
	if err := s.persist(ctx); err != nil {
		return command.Continue, err
	}
	s.success(msgSaved)
	return command.Continue, nil
}

func (s *Session) closeWithoutSaving(context.Context, []string) (command.Result, error) {
	s.println(s.styles.Warning.Render(msgNotSaved))
	return command.Stop, nil
}

// finish saves and ends the session. A failed save keeps the session open so
// nothing is lost.
func (s *Session) finish(ctx context.Context, _ []string) (command.Result, error) {
	if err := s.persist(ctx); err != nil {
		return command.Continue, err
	}
	s.println(msgGoodBye)
	return command.Stop, nil
}
