package storage

// Store abstrahiert den Record-Store: ein hierarchischer key→bytes Ablageort,
// adressiert über den Artikel-Identifier. Mehr als Exists und Write braucht
// die Pipeline nicht.
type Store interface {
	// Exists prüft, ob unter dem Identifier bereits ein Record liegt.
	Exists(id string) (bool, error)

	// Write legt den Record unter dem Identifier ab. Der Aufrufer stellt über
	// Exists sicher, dass nie überschrieben wird.
	Write(id string, data []byte) error

	// Location gibt den externen Pfad bzw. die URL des Records zurück.
	Location(id string) string
}
