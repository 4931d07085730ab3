package models

import "testing"

func TestFamilyBreakdownSum(t *testing.T) {
	b := Beneficiary{
		FullName:      "Amina",
		FamilySize:    6,
		FemaleUnder17: 2,
		FemaleOver18:  1,
		MaleUnder18:   1,
		MaleOver18:    1,
	}

	if got := b.FamilyBreakdownSum(); got != 5 {
		t.Errorf("FamilyBreakdownSum = %d, want 5", got)
	}

	// The entered family size and the bracket sum may disagree; the response
	// carries both without reconciling them.
	resp := b.ToResponse()
	if resp.FamilySize != 6 || resp.FamilyBreakdownSum != 5 {
		t.Errorf("response = {FamilySize: %d, FamilyBreakdownSum: %d}, want {6, 5}", resp.FamilySize, resp.FamilyBreakdownSum)
	}
}
