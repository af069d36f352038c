// Package contacts opens a fixed-capacity contact store backed by a
// single binary file.
//
// Example:
//
//	store, err := contacts.Open(contacts.WithFile("./contacts.db"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	err = store.Add(record.Record{FirstName: "Jason", LastName: "Jerrod"})
//	for _, e := range store.List() {
//	    fmt.Printf("%d) %s, %s\n", e.Index, e.LastName, e.FirstName)
//	}
package contacts
