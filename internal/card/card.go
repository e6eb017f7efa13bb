package card

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"expense-tally/internal/domain"
)

// Issuer identification prefixes registered to MasterCard.
var masterCardPrefixes = []string{"51", "52", "53", "54", "55"}

const cardNumberLength = 16

var (
	digitsOnly    = regexp.MustCompile(`^\d+$`)
	dayMonthToken = regexp.MustCompile(`(?i)\b(\d{1,2})(JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)\b`)
)

var monthsByAbbreviation = map[string]time.Month{
	"JAN": time.January,
	"FEB": time.February,
	"MAR": time.March,
	"APR": time.April,
	"MAY": time.May,
	"JUN": time.June,
	"JUL": time.July,
	"AUG": time.August,
	"SEP": time.September,
	"OCT": time.October,
	"NOV": time.November,
	"DEC": time.December,
}

// Identity is the card-centric view of one card-payment ledger entry: the
// validated card number, and the transaction date corrected from the entry's
// first reference annotation. CardNumber is empty when the export omitted it;
// that is not an error.
type Identity struct {
	CardNumber      string
	TransactionDate time.Time
}

// Normalize derives the card Identity for a card-payment ledger entry. The
// entry must be tagged with a card-payment type. A present but malformed card
// number fails validation; an absent one does not.
func Normalize(entry domain.LedgerTransaction) (Identity, error) {
	if !entry.Type.IsCardPayment() {
		return Identity{}, domain.NewValidationError("not a card transaction")
	}
	identity := Identity{
		TransactionDate: correctedDate(entry.TransactionDate, entry.Reference1),
	}
	cardNumber := strings.TrimSpace(entry.Reference2)
	if cardNumber == "" {
		return identity, nil
	}
	if !validCardNumber(cardNumber, entry.Type) {
		return Identity{}, domain.NewValidationError("invalid card number")
	}
	identity.CardNumber = cardNumber
	return identity, nil
}

// validCardNumber checks that the number is 16 digits after stripping dashes,
// and that MasterCard-tagged entries carry a registered issuer prefix.
func validCardNumber(cardNumber string, transactionType domain.TransactionType) bool {
	stripped := strings.ReplaceAll(cardNumber, "-", "")
	if len(stripped) != cardNumberLength {
		return false
	}
	if !digitsOnly.MatchString(stripped) {
		return false
	}
	if transactionType == domain.TransactionTypeMasterCard {
		for _, prefix := range masterCardPrefixes {
			if strings.HasPrefix(stripped, prefix) {
				return true
			}
		}
		return false
	}
	return true
}

// correctedDate scans the reference text for a dayMONTH token such as "20DEC"
// and, when found, replaces the statement date's day and month with the
// annotated ones. A corrected month later than the nominal month means the
// purchase crossed a year boundary, so the year is rolled back by one.
func correctedDate(nominal time.Time, reference string) time.Time {
	if strings.TrimSpace(reference) == "" {
		return nominal
	}
	groups := dayMonthToken.FindStringSubmatch(reference)
	if groups == nil {
		return nominal
	}
	day, err := strconv.Atoi(groups[1])
	if err != nil || day < 1 || day > 31 {
		return nominal
	}
	month := monthsByAbbreviation[strings.ToUpper(groups[2])]
	year := nominal.Year()
	if month > nominal.Month() {
		year--
	}
	corrected := time.Date(year, month, day, 0, 0, 0, 0, nominal.Location())
	// time.Date normalizes overflow (31FEB becomes early March); a token that
	// does not name a real day of its month is noise, not a correction.
	if corrected.Month() != month {
		return nominal
	}
	return corrected
}
