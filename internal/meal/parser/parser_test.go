package parser

import (
	"testing"

	"nutrichat/internal/model"
)

func TestParseSummaryLines(t *testing.T) {
	t.Run("SingleLine", func(t *testing.T) {
		items := ParseSummaryLines("Eggs (4 medium), 24 g protein, 0 g carbs, 12 g fat, 280 cals")
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		want := model.FoodItem{Food: "Eggs (4 medium)", Protein: 24, Carbs: 0, Fat: 12, Calories: 280}
		if items[0] != want {
			t.Errorf("expected %+v, got %+v", want, items[0])
		}
	})

	t.Run("MultipleLinesWithSurroundingText", func(t *testing.T) {
		reply := "Here is your meal summary:\n" +
			"Beef mince (500g 5% fat), 60 g protein, 0 g carbs, 25 g fat, 420 cals\n" +
			"Rice (200g cooked), 5 g protein, 56 g carbs, 1 g fat, 260 cals\n" +
			"Should I log this meal or do you want to add more food?"
		items := ParseSummaryLines(reply)
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[0].Food != "Beef mince (500g 5% fat)" {
			t.Errorf("unexpected first food name %q", items[0].Food)
		}
		if items[1].Carbs != 56 || items[1].Calories != 260 {
			t.Errorf("unexpected second item macros: %+v", items[1])
		}
	})

	t.Run("CaseInsensitiveUnits", func(t *testing.T) {
		items := ParseSummaryLines("Oats (50g), 6 G Protein, 33 G Carbs, 4 G Fat, 190 Cals")
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		if items[0].Protein != 6 || items[0].Calories != 190 {
			t.Errorf("unexpected item %+v", items[0])
		}
	})

	t.Run("TrailingContentAfterCalsIgnored", func(t *testing.T) {
		items := ParseSummaryLines("Banana (1 large), 1 g protein, 31 g carbs, 0 g fat, 120 cals (approx)")
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		if items[0].Calories != 120 {
			t.Errorf("expected 120 cals, got %d", items[0].Calories)
		}
	})

	t.Run("MissingCaloriesRejected", func(t *testing.T) {
		items := ParseSummaryLines("Eggs (4 medium), 24 g protein, 0 g carbs, 12 g fat")
		if len(items) != 0 {
			t.Errorf("expected no items, got %+v", items)
		}
	})

	t.Run("MissingQuantityParensRejected", func(t *testing.T) {
		items := ParseSummaryLines("Eggs, 24 g protein, 0 g carbs, 12 g fat, 280 cals")
		if len(items) != 0 {
			t.Errorf("expected no items, got %+v", items)
		}
	})

	t.Run("ReorderedFieldsRejected", func(t *testing.T) {
		items := ParseSummaryLines("Eggs (4 medium), 0 g carbs, 24 g protein, 12 g fat, 280 cals")
		if len(items) != 0 {
			t.Errorf("expected no items, got %+v", items)
		}
	})

	t.Run("ConversationalReply", func(t *testing.T) {
		items := ParseSummaryLines("How many eggs did you have, and what size were they?")
		if len(items) != 0 {
			t.Errorf("expected no items, got %+v", items)
		}
	})

	t.Run("EmptyReply", func(t *testing.T) {
		if items := ParseSummaryLines(""); len(items) != 0 {
			t.Errorf("expected no items, got %+v", items)
		}
	})
}

func TestDetectLogIntent(t *testing.T) {
	t.Run("ExactMarker", func(t *testing.T) {
		if !DetectLogIntent("User wants to log the meal.") {
			t.Error("expected intent to be detected")
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		if !DetectLogIntent("USER WANTS TO LOG THE MEAL") {
			t.Error("expected intent to be detected")
		}
	})

	t.Run("MarkerEmbeddedInText", func(t *testing.T) {
		if !DetectLogIntent("Understood. User wants to log the meal, proceeding.") {
			t.Error("expected intent to be detected")
		}
	})

	t.Run("NearPhraseNotDetected", func(t *testing.T) {
		if DetectLogIntent("The meal was logged yesterday.") {
			t.Error("expected no intent for near phrase")
		}
	})

	t.Run("QuestionAboutLoggingNotDetected", func(t *testing.T) {
		if DetectLogIntent("Would you like to log this meal or add more food?") {
			t.Error("expected no intent for clarifying question")
		}
	})
}
