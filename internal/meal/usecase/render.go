package usecase

import (
	"fmt"
	"html"
	"strings"

	"nutrichat/internal/model"
)

// renderNutritionTable formats the pending meal as an HTML table with a
// totals row. The "nutrition-table" class is part of the client contract.
func renderNutritionTable(items []model.FoodItem) string {
	var b strings.Builder
	b.WriteString(`<table class="nutrition-table">`)
	b.WriteString("<tr><th>Food</th><th>Protein (g)</th><th>Carbs (g)</th><th>Fat (g)</th><th>Calories</th></tr>")

	var protein, carbs, fat, calories int
	for _, item := range items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td></tr>",
			html.EscapeString(item.Food), item.Protein, item.Carbs, item.Fat, item.Calories)
		protein += item.Protein
		carbs += item.Carbs
		fat += item.Fat
		calories += item.Calories
	}

	fmt.Fprintf(&b, `<tr class="totals"><td>Total</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td></tr>`,
		protein, carbs, fat, calories)
	b.WriteString("</table>")
	return b.String()
}
