package extract

import "testing"

// TestParseInputFullDeck verifies all checks pass on a complete input.
func TestParseInputFullDeck(t *testing.T) {
	input := ParseInput(`! B3LYP def2-SVP OPT FREQ
%pal nprocs 8 end
* xyz 0 1
C 0.0 0.0 0.0
*
`)
	if !input.MethodPresent || !input.BasisPresent || !input.TasksPresent || !input.ChargeMultPresent {
		t.Fatalf("expected all checks true, got %+v", input)
	}
}

// TestParseInputCompositeMethodImpliesBasis verifies 3c methods count as a basis.
func TestParseInputCompositeMethodImpliesBasis(t *testing.T) {
	input := ParseInput("! B97-3c Opt Freq\n* xyzfile 0 1 mol.xyz\n")
	if !input.BasisPresent {
		t.Fatalf("expected composite method to imply a basis")
	}
	if !input.ChargeMultPresent {
		t.Fatalf("expected xyzfile charge/mult to be detected")
	}
}

// TestParseInputBasisBlock verifies %basis blocks are accepted.
func TestParseInputBasisBlock(t *testing.T) {
	input := ParseInput("! HF OPT\n%basis\n  basis \"6-31G\"\nend\n* xyz 0 1\n*\n")
	if !input.BasisPresent {
		t.Fatalf("expected %%basis block to count")
	}
}

// TestParseInputMissingPieces verifies checks fail independently.
func TestParseInputMissingPieces(t *testing.T) {
	input := ParseInput("just a comment line\n* xyz zero one\n")
	if input.MethodPresent || input.BasisPresent || input.ChargeMultPresent {
		t.Fatalf("expected all checks false, got %+v", input)
	}
}

// TestParseInputTaskWordBoundary verifies OPTION does not match OPT.
func TestParseInputTaskWordBoundary(t *testing.T) {
	if ParseInput("an OPTION is not a task").TasksPresent {
		t.Fatalf("expected no task keyword match")
	}
	if !ParseInput("! RHF SP").TasksPresent {
		t.Fatalf("expected SP to match")
	}
}
