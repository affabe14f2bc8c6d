package util

import "time"

const (
	dateLayoutBR  = "02/01/2006"
	dateLayoutISO = "2006-01-02"
)

var saoPauloLocation *time.Location

func init() {
	var err error
	saoPauloLocation, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		saoPauloLocation = time.FixedZone("BRT", -3*60*60)
	}
}

// FormatDateBR renders t as dd/mm/yyyy in São Paulo time.
func FormatDateBR(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(saoPauloLocation).Format(dateLayoutBR)
}

// ISODate renders the UTC calendar date of t as yyyy-mm-dd.
func ISODate(t time.Time) string {
	return t.UTC().Format(dateLayoutISO)
}

func Location() *time.Location {
	return saoPauloLocation
}
