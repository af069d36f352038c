package core

const (
	MaxContacts = 5 // Capacity of a Store; Add beyond this fails

	DefaultFileName = "contacts.db" // Backing file used when none is configured
	DefaultFileMode = 0644          // 6 (rw- owner), 4 (r-- group), 4 (r-- others)
)
