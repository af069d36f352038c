/*
	Basic Script that fills a contacts file with random contacts for manual testing.
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/0xRadioAc7iv/go-contacts/contacts"
	"github.com/0xRadioAc7iv/go-contacts/core"
	"github.com/0xRadioAc7iv/go-contacts/internal/record"
)

var (
	firstNames = []string{"Jason", "Jane", "Mary Ann", "Omar", "Li", "Priya", "Tomás", "Ingrid"}
	lastNames  = []string{"Jerrod", "Doe", "Lee", "Haddad", "Wei", "Raman", "García", "Berg"}
	countries  = []string{"USA", "Canada", "Mexico", "Germany", "India"}
	states     = []string{"CA", "NY", "ON", "BY", "KA", ""}
	streets    = []string{"Main St", "Oak Ave", "Pine Rd", "Elm Blvd"}
)

func main() {
	file := flag.String("file", core.DefaultFileName, "Contacts file to seed")
	count := flag.Int("n", core.MaxContacts, "Number of contacts to add (stops at capacity)")
	fresh := flag.Bool("fresh", false, "Remove the existing file first")
	flag.Parse()

	start := time.Now()

	if *fresh {
		if err := os.Remove(*file); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Println("Error removing file:", err)
			os.Exit(1)
		}
	}

	store, err := contacts.Open(contacts.WithFile(*file))
	if err != nil {
		fmt.Println("Error opening contacts file:", err)
		os.Exit(1)
	}
	defer store.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	added := 0
	for i := 0; i < *count; i++ {
		err := store.Add(randomContact(rng))
		if errors.Is(err, core.ErrCapacityExceeded) {
			fmt.Printf("Capacity of %d reached\n", core.MaxContacts)
			break
		}
		if err != nil {
			fmt.Println("Error adding contact:", err)
			os.Exit(1)
		}
		added++
	}

	fmt.Printf("Added %d contacts to %s in %v\n", added, *file, time.Since(start))
}

func randomContact(rng *rand.Rand) record.Record {
	pick := func(values []string) string {
		return values[rng.Intn(len(values))]
	}

	return record.Record{
		ID:        uuid.NewString(),
		FirstName: pick(firstNames),
		LastName:  pick(lastNames),
		Country:   pick(countries),
		State:     pick(states),
		Address1:  fmt.Sprintf("%d %s", 1+rng.Intn(9999), pick(streets)),
		Address2:  "",
		Zip:       fmt.Sprintf("%05d", rng.Intn(100000)),
		HomePhone: fmt.Sprintf("555-%04d", rng.Intn(10000)),
		WorkPhone: fmt.Sprintf("555-%04d", rng.Intn(10000)),
	}
}
