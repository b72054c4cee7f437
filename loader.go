package grana

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// File names of the persisted collections, one per logical record.
const (
	accountsFile         = "accounts.jsonl"
	cardsFile            = "cards.jsonl"
	expensesFile         = "expenses.jsonl"
	incomesFile          = "incomes.jsonl"
	usersFile            = "users.jsonl"
	accountTypesFile     = "account_types.json"
	incomeCategoriesFile = "income_categories.json"
	companyFile          = "company.json"
	sessionFile          = "session.json"
)

// Store persists a Book as independent collection files under a data
// directory. Loading is best-effort: a missing or corrupt file degrades
// to an empty collection with a logged warning, never an error.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on
// the first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's data directory.
func (s *Store) Dir() string { return s.dir }

// loadRecords reads one collection file, falling back to nil when the
// file is missing or unreadable.
func loadRecords[T any](dir, name string) []T {
	f, err := os.Open(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		log.Printf("warning: could not open %s, starting with an empty collection: %v", name, err)
		return nil
	}
	defer f.Close()

	records, err := decodeRecords[T](f)
	if err != nil {
		log.Printf("warning: could not decode %s, starting with an empty collection: %v", name, err)
		return nil
	}
	return records
}

// loadOne reads a single-record file into out, leaving it zero when the
// file is missing or unreadable.
func loadOne(dir, name string, out any) {
	f, err := os.Open(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		log.Printf("warning: could not open %s, using defaults: %v", name, err)
		return
	}
	defer f.Close()
	if err := decodeOne(f, out); err != nil {
		log.Printf("warning: could not decode %s, using defaults: %v", name, err)
	}
}

// loadStrings reads a JSON string-array file (category lists).
func loadStrings(dir, name string) []string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		log.Printf("warning: could not read %s: %v", name, err)
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		log.Printf("warning: could not decode %s: %v", name, err)
		return nil
	}
	return out
}

// Load reads the whole book from the data directory.
func (s *Store) Load() *Book {
	b := NewBook()
	b.Accounts = loadRecords[Account](s.dir, accountsFile)
	b.Cards = loadRecords[CreditCard](s.dir, cardsFile)
	b.Expenses = loadRecords[Expense](s.dir, expensesFile)
	b.Incomes = loadRecords[Income](s.dir, incomesFile)
	b.Users = loadRecords[User](s.dir, usersFile)
	b.AccountTypes = loadStrings(s.dir, accountTypesFile)
	b.IncomeCategories = loadStrings(s.dir, incomeCategoriesFile)
	loadOne(s.dir, companyFile, &b.Company)
	loadOne(s.dir, sessionFile, &b.Session)
	return b
}

// saveFile writes one collection file, creating the directory as needed.
func (s *Store) saveFile(name string, write func(f *os.File) error) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open %q for writing: %w", path, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}

// Save writes every collection of the book through to disk. Writes are
// single-shot and sequential; there is no retry and no cross-file
// atomicity.
func (s *Store) Save(b *Book) error {
	if err := s.saveFile(accountsFile, func(f *os.File) error { return encodeRecords(f, b.Accounts) }); err != nil {
		return err
	}
	if err := s.saveFile(cardsFile, func(f *os.File) error { return encodeRecords(f, b.Cards) }); err != nil {
		return err
	}
	if err := s.saveFile(expensesFile, func(f *os.File) error { return encodeRecords(f, b.Expenses) }); err != nil {
		return err
	}
	if err := s.saveFile(incomesFile, func(f *os.File) error { return encodeRecords(f, b.Incomes) }); err != nil {
		return err
	}
	if err := s.saveFile(usersFile, func(f *os.File) error { return encodeRecords(f, b.Users) }); err != nil {
		return err
	}
	if err := s.saveFile(accountTypesFile, func(f *os.File) error { return encodeOne(f, b.AccountTypes) }); err != nil {
		return err
	}
	if err := s.saveFile(incomeCategoriesFile, func(f *os.File) error { return encodeOne(f, b.IncomeCategories) }); err != nil {
		return err
	}
	if err := s.saveFile(companyFile, func(f *os.File) error { return encodeOne(f, b.Company) }); err != nil {
		return err
	}
	return s.saveFile(sessionFile, func(f *os.File) error { return encodeOne(f, b.Session) })
}
