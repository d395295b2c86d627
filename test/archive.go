package test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"testing"
)

// Zip returns a ZIP archive containing the files.
func Zip(t *testing.T, files map[string][]byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("could not add %s to archive: %v", name, err)
		}

		if _, err := f.Write(content); err != nil {
			t.Fatalf("could not write %s: %v", name, err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("could not close archive: %v", err)
	}

	return buf.Bytes()
}

// TransactionArchive returns an archive as the bank sends it, containing the
// records as booked transactions.
func TransactionArchive(t *testing.T, records ...map[string]any) []byte {
	t.Helper()

	if records == nil {
		records = []map[string]any{}
	}

	content, err := json.Marshal(map[string]any{
		"account": map[string]any{"iban": "NL91BNGH0417164300"},
		"transactions": map[string]any{
			"booked":  records,
			"pending": []any{},
		},
	})
	if err != nil {
		t.Fatalf("could not marshal transactions: %v", err)
	}

	return Zip(t, map[string][]byte{"transactions.json": content})
}

// BankRecord returns a booked transaction record in the format of the bank.
func BankRecord(transactionID, amount string) map[string]any {
	return map[string]any{
		"transactionId":  transactionID,
		"entryReference": "ref-" + transactionID,
		"endToEndId":     "NOTPROVIDED",
		"bookingDate":    "2022-05-13",
		"valueDate":      "2022-05-13",
		"transactionAmount": map[string]any{
			"amount":   amount,
			"currency": "EUR",
		},
		"creditorName": "Tuincentrum De Groene Vinger",
		"creditorAccount": map[string]any{
			"iban":     "NL44RABO0123456789",
			"currency": "EUR",
		},
		"debtorName": "Stichting Buurtkracht",
		"debtorAccount": map[string]any{
			"iban":     "NL91BNGH0417164300",
			"currency": "EUR",
		},
		"remittanceInformationStructured":   "",
		"remittanceInformationUnstructured": "Aankoop plantenbakken",
	}
}
