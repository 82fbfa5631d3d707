package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"lunara/internal/services/api/records/domain"
	"lunara/internal/services/api/records/repo"
)

func testSvc() *Svc {
	return New(Options{UserColumn: "user_id"}, repo.NewTable())
}

func retrieve(t *testing.T, name string, up *domain.Upload) domain.RetrieveResult {
	t.Helper()
	return testSvc().Retrieve(context.Background(), domain.RetrieveInput{Name: name}, up)
}

func TestRetrieveNoFile(t *testing.T) {
	t.Parallel()

	got := retrieve(t, "ada", nil)
	if got.Success || got.Message != "No file uploaded." {
		t.Fatalf("result = %+v", got)
	}
	if got.CycleFields != nil {
		t.Fatalf("fields should be absent on failure")
	}
}

func TestRetrieveUnreadableFile(t *testing.T) {
	t.Parallel()

	got := retrieve(t, "ada", &domain.Upload{
		Filename: "history.xlsx",
		Data:     []byte("not a workbook"),
	})
	if got.Success || !strings.HasPrefix(got.Message, "Error reading file:") {
		t.Fatalf("result = %+v", got)
	}

	got = retrieve(t, "ada", &domain.Upload{
		Filename: "history.csv",
		Err:      errors.New("boom"),
	})
	if got.Success || !strings.HasPrefix(got.Message, "Error reading file:") {
		t.Fatalf("result = %+v", got)
	}
}

func TestRetrieveNoUserColumn(t *testing.T) {
	t.Parallel()

	got := retrieve(t, "ada", &domain.Upload{
		Filename: "history.csv",
		Data:     []byte("who,bbt\nada,36.5\n"),
	})
	if got.Success || got.Message != "No 'user_id' column found in the file." {
		t.Fatalf("result = %+v", got)
	}
}

func TestRetrieveNoMatch(t *testing.T) {
	t.Parallel()

	got := retrieve(t, "zed", &domain.Upload{
		Filename: "history.csv",
		Data:     []byte("user_id,Cycle_Length_1\nada,28\n"),
	})
	if got.Success || got.Message != "No rows found for user_id 'zed'." {
		t.Fatalf("result = %+v", got)
	}
	// matching is exact and case-sensitive
	got = retrieve(t, "Ada", &domain.Upload{
		Filename: "history.csv",
		Data:     []byte("user_id,Cycle_Length_1\nada,28\n"),
	})
	if got.Success {
		t.Fatalf("case-insensitive match should not succeed")
	}
}

func TestRetrieveFirstMatch(t *testing.T) {
	t.Parallel()

	csv := "user_id,LMP_Cycle_1,Cycle_Length_1,Period_Duration_1,is_pcos\n" +
		"ada,2024-01-01,28,5,True\n" +
		"ada,2024-02-01,30,6,False\n"
	got := retrieve(t, "ada", &domain.Upload{Filename: "history.csv", Data: []byte(csv)})

	if !got.Success || got.Message != "Data loaded for user 'ada'." {
		t.Fatalf("result = %+v", got)
	}
	if got.CycleFields == nil {
		t.Fatalf("fields missing on success")
	}
	// first match wins
	if got.LMPCycle1 == nil || *got.LMPCycle1 != "2024-01-01" {
		t.Fatalf("LMP_Cycle_1 = %v", got.LMPCycle1)
	}
	if got.CycleLength1 == nil || *got.CycleLength1 != "28" {
		t.Fatalf("Cycle_Length_1 = %v", got.CycleLength1)
	}
	if got.IsPCOS == nil || *got.IsPCOS != "True" {
		t.Fatalf("is_pcos = %v", got.IsPCOS)
	}
	// columns absent from the table report as nil
	if got.LMPCycle2 != nil || got.PeriodDuration3 != nil {
		t.Fatalf("absent columns should be nil: %+v", got.CycleFields)
	}
}

// response shape: failures carry only the flag and message, successes carry
// every history key, null for the absent ones
func TestRetrieveJSONShape(t *testing.T) {
	t.Parallel()

	fail, err := json.Marshal(retrieve(t, "ada", nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(fail), "LMP_Cycle_1") {
		t.Fatalf("failure body should not carry history keys: %s", fail)
	}

	ok, err := json.Marshal(retrieve(t, "ada", &domain.Upload{
		Filename: "history.csv",
		Data:     []byte("user_id,Cycle_Length_1\nada,28\n"),
	}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"Cycle_Length_1":"28"`, `"LMP_Cycle_1":null`, `"is_pcos":null`} {
		if !strings.Contains(string(ok), key) {
			t.Fatalf("success body missing %s: %s", key, ok)
		}
	}
}
