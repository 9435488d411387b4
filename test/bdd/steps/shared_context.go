package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
)

// sharedErr carries the last error of any step context, so one assertion step
// serves every feature
var sharedErr error

// getCell returns a row's value for a header column, or "" when the table has
// no such column
func getCell(table *godog.Table, row *messages.PickleTableRow, column string) string {
	if len(table.Rows) == 0 {
		return ""
	}
	for i, header := range table.Rows[0].Cells {
		if header.Value == column {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}
	return ""
}

func theOperationShouldFailWith(expected string) error {
	if sharedErr == nil {
		return fmt.Errorf("expected an error containing %q, got none", expected)
	}
	if !strings.Contains(sharedErr.Error(), expected) {
		return fmt.Errorf("expected an error containing %q, got %q", expected, sharedErr.Error())
	}
	return nil
}

// InitializeSharedSteps registers steps used across features
func InitializeSharedSteps(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		sharedErr = nil
		return c, nil
	})

	ctx.Step(`^the operation should fail with "([^"]*)"$`, theOperationShouldFailWith)
}
