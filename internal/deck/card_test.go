package deck

import "testing"

func TestParseCard(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{name: "ace of spades", input: "As", want: Card{Rank: Ace, Suit: Spades}},
		{name: "ten of diamonds", input: "Td", want: Card{Rank: Ten, Suit: Diamonds}},
		{name: "deuce of clubs", input: "2c", want: Card{Rank: Two, Suit: Clubs}},
		{name: "lowercase rank", input: "kh", want: Card{Rank: King, Suit: Hearts}},
		{name: "uppercase suit", input: "QD", want: Card{Rank: Queen, Suit: Diamonds}},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "ten spelled as 10", input: "10", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCard(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	got, err := ParseCards("AsKs Qh")
	if err != nil {
		t.Fatalf("ParseCards() error = %v", err)
	}
	want := []Card{
		{Rank: Ace, Suit: Spades},
		{Rank: King, Suit: Spades},
		{Rank: Queen, Suit: Hearts},
	}
	if len(got) != len(want) {
		t.Fatalf("ParseCards() returned %d cards, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("card %d = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := ParseCards("AsK"); err == nil {
		t.Error("ParseCards() should reject odd-length input")
	}
}

// Every one of the 52 cards must survive a String/ParseCard round trip.
func TestCardRoundTrip(t *testing.T) {
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := Card{Rank: rank, Suit: suit}
			parsed, err := ParseCard(card.String())
			if err != nil {
				t.Fatalf("ParseCard(%q) error = %v", card.String(), err)
			}
			if parsed != card {
				t.Errorf("round trip of %v gave %v", card, parsed)
			}
		}
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards should panic on invalid input")
		}
	}()
	MustParseCards("bogus!")
}
