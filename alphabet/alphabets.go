package alphabet

// The shipped alphabets.  Each is built from two strings: the ordered
// character set and, at the same positions, the complements.  The IUPAC
// nucleic-acid alphabets deliberately exclude U (DNA) and T (RNA) so that
// A keeps a single unambiguous complement.  Amino acids have no biological
// complement, so their tables map every character to itself; this keeps
// the reverse-complement API total at the price of it meaning plain
// reversal for protein sequences.
var (
	// DNA is the four-character DNA alphabet ACGT.
	DNA = MustNew("DNA", "ACGT", "TGCA")

	// DNAOrN is the DNA alphabet extended with the unknown-base symbol N,
	// which is its own complement.
	DNAOrN = MustNew("DNA+N", "ACGNT", "TGCNA")

	// RNA is the four-character RNA alphabet ACGU.
	RNA = MustNew("RNA", "ACGU", "UGCA")

	// RNAOrN is the RNA alphabet extended with the unknown-base symbol N.
	RNAOrN = MustNew("RNA+N", "ACGNU", "UGCNA")

	// DNAIupac is the 15-character IUPAC DNA alphabet with ambiguity codes.
	DNAIupac = MustNew("DNA IUPAC", "ABCDGHKMNRSTVWY", "TVGHCDMKNYWABSR")

	// RNAIupac is the 15-character IUPAC RNA alphabet with ambiguity codes.
	RNAIupac = MustNew("RNA IUPAC", "ABCDGHKMNRSUVWY", "UVGHCDMKNYWABSR")

	// AminoAcid is the 20 canonical amino acids plus the unknown symbol X.
	AminoAcid = MustNew("amino acid", "ARNDCQEGHILKMFPSTWYVX", "ARNDCQEGHILKMFPSTWYVX")

	// AminoAcidExtended additionally carries the ambiguity codes B and Z
	// and the stop symbol *.
	AminoAcidExtended = MustNew("amino acid extended",
		"ARNDCQEGHILKMFPSTWYVBZX*", "ARNDCQEGHILKMFPSTWYVBZX*")
)
