/*

A CLI app to run the semantic reconstruction engine over a scanned
Fallout: New Vegas (Xbox 360) memory-dump ScanResult and print the
resulting catalogue of reconstructed entities as JSON.

*/
package main

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fnv360/semrecon/dumpfile"
	"github.com/fnv360/semrecon/logadapter"
	"github.com/fnv360/semrecon/recon"
	"github.com/fnv360/semrecon/recondump"
)

const (
	appName    = "semrecon"
	appVersion = "v0.1.0"

	ExitCodeMissingArguments = 1
	ExitCodeFailedToReadScan = 2
	ExitCodeFailedToOpenDump = 3
	ExitCodeInvalidHash      = 4
)

const validHashes = "valid values are 'sha1', 'sha256', 'sha512', 'md5'"

// Flag variables, mirroring the teacher CLI's package-level flag shape
// (cmd/screp/screp.go) but composed through cobra's flag set because this
// engine's independently toggleable passes (runtime merge, cross
// enrichment, dialogue graph, per-kind output sections) outgrow a flat
// flag.Bool list.
var (
	scanPath string
	dumpPath string
	outFile  string

	runtimeMerge    bool
	crossEnrichment bool
	dialogueGraph   bool
	debug           bool
	maxPerKind      int

	showNPC           bool
	showQuests        bool
	showDialogueTree  bool
	showUnreconstruct bool
	showStats         bool

	hashAlgo string
	indent   bool
)

func main() {
	root := &cobra.Command{
		Use:     appName,
		Short:   "Reconstruct Fallout: New Vegas (Xbox 360) semantic entities from a memory dump scan",
		Version: appVersion,
	}

	reconstruct := &cobra.Command{
		Use:   "reconstruct",
		Short: "Run reconstruct_all over a scan result and print the aggregate result as JSON",
		Run:   runReconstruct,
	}

	flags := reconstruct.Flags()
	flags.StringVar(&scanPath, "scan", "", "path to a JSON-encoded recondump.ScanResult (required)")
	flags.StringVar(&dumpPath, "dump", "", "path to the raw memory-dump file backing the scan; enables accessor-mode reconstruction")
	flags.StringVar(&outFile, "outfile", "", "optional output file name")

	flags.BoolVar(&runtimeMerge, "runtime", true, "run the runtime-struct merge pass")
	flags.BoolVar(&crossEnrichment, "enrich", true, "run the ammo/weapon/projectile and cell/LAND cross-enrichment passes")
	flags.BoolVar(&dialogueGraph, "dialogue", true, "build the quest/topic/INFO dialogue tree")
	flags.BoolVar(&debug, "debug", false, "enable verbose per-pass debug logging")
	flags.IntVar(&maxPerKind, "max-per-kind", 0, "soft cap on emitted records per record kind (0 = unlimited)")

	flags.BoolVar(&showNPC, "npc", true, "include reconstructed NPCs in the output")
	flags.BoolVar(&showQuests, "quests", true, "include reconstructed quests in the output")
	flags.BoolVar(&showDialogueTree, "dialogue-tree", true, "include the dialogue tree in the output")
	flags.BoolVar(&showUnreconstruct, "unreconstructed", false, "include the unreconstructed-type-counts table in the output")
	flags.BoolVar(&showStats, "stats", false, "print only the reconstructed-type catalogue stats and exit")

	flags.StringVar(&hashAlgo, "hash", "", "calculate and print the hash of the raw dump window actually read; "+validHashes)
	flags.BoolVar(&indent, "indent", true, "use indentation when formatting JSON output")

	root.AddCommand(reconstruct)

	if err := root.Execute(); err != nil {
		os.Exit(ExitCodeMissingArguments)
	}
}

func runReconstruct(cmd *cobra.Command, args []string) {
	if scanPath == "" {
		fmt.Println("missing required --scan flag")
		os.Exit(ExitCodeMissingArguments)
	}

	sr, err := loadScanResult(scanPath)
	if err != nil {
		fmt.Printf("Failed to read scan result: %v\n", err)
		os.Exit(ExitCodeFailedToReadScan)
	}

	var acc recondump.Accessor
	var hasher hash.Hash
	if dumpPath != "" {
		mapped, err := dumpfile.Open(dumpPath)
		if err != nil {
			fmt.Printf("Failed to open dump file: %v\n", err)
			os.Exit(ExitCodeFailedToOpenDump)
		}
		defer mapped.Close()
		acc = mapped

		if hashAlgo != "" {
			hasher, err = newHasher(hashAlgo)
			if err != nil {
				fmt.Println(err)
				fmt.Println(validHashes)
				os.Exit(ExitCodeInvalidHash)
			}
		}
	}

	log := logadapter.NewLogrus(nil)
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	cfg := recon.Config{
		RuntimeMerge:      runtimeMerge,
		CrossEnrichment:   crossEnrichment,
		DialogueGraph:     dialogueGraph,
		Debug:             debug,
		MaxRecordsPerKind: maxPerKind,
	}

	// The runtime-struct reader is an external collaborator this repository
	// does not implement (spec.md §1 Out of scope); reconstruction still
	// runs fully on the ESM track with reader=nil (spec §4.9, §7).
	result := recon.ReconstructAll(sr, acc, nil, nil, cfg, log)

	destination := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			fmt.Printf("Failed to create output file: %v\n", err)
			os.Exit(ExitCodeFailedToOpenDump)
		}
		defer f.Close()
		destination = f
	}

	if showStats {
		printStats(destination, result)
		return
	}

	custom := map[string]any{}
	if hasher != nil {
		if err := hashDumpWindow(hasher, acc, sr); err == nil {
			custom["DumpHash"] = hex.EncodeToString(hasher.Sum(nil))
		}
	}

	if !showNPC {
		result.NPCs = nil
	}
	if !showQuests {
		result.Quests = nil
	}
	if !showDialogueTree {
		result.DialogueTree = nil
	}
	if !showUnreconstruct {
		result.UnreconstructedTypeCounts = nil
	}

	enc := json.NewEncoder(destination)
	if indent {
		enc.SetIndent("", "  ")
	}
	if len(custom) > 0 {
		_ = enc.Encode(custom)
	}
	if err := enc.Encode(result); err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
	}
}

func loadScanResult(path string) (*recondump.ScanResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sr recondump.ScanResult
	if err := json.NewDecoder(f).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode scan result: %w", err)
	}
	return &sr, nil
}

func newHasher(algo string) (hash.Hash, error) {
	switch strings.ToLower(algo) {
	case "md5":
		return md5.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "sha256":
		return sha256.New(), nil
	case "sha512":
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("invalid hash: %v", algo)
	}
}

// hashDumpWindow hashes the raw bytes backing every scanned MainRecord, the
// "dump window actually read" this CLI's --hash flag refers to.
func hashDumpWindow(h hash.Hash, acc recondump.Accessor, sr *recondump.ScanResult) error {
	if acc == nil {
		return fmt.Errorf("no dump file opened")
	}
	for _, mr := range sr.MainRecords {
		if mr.DataSize == 0 {
			continue
		}
		buf := make([]byte, mr.DataSize)
		if err := acc.ReadAt(uint64(mr.Offset)+24, buf); err != nil {
			continue
		}
		h.Write(buf)
	}
	return nil
}

func printStats(w *os.File, result *recon.SemanticReconstructionResult) {
	fmt.Fprintf(w, "records processed:   %d\n", result.TotalRecordsProcessed)
	fmt.Fprintf(w, "npcs:                %d\n", len(result.NPCs))
	fmt.Fprintf(w, "creatures:           %d\n", len(result.Creatures))
	fmt.Fprintf(w, "quests:              %d\n", len(result.Quests))
	fmt.Fprintf(w, "dialogues:           %d\n", len(result.Dialogues))
	fmt.Fprintf(w, "topics:              %d\n", len(result.Topics))
	fmt.Fprintf(w, "cells:               %d\n", len(result.Cells))
	fmt.Fprintf(w, "weapons:             %d\n", len(result.Weapons))
	fmt.Fprintf(w, "armors:              %d\n", len(result.Armors))
	fmt.Fprintf(w, "unreconstructed kinds: %d\n", len(result.UnreconstructedTypeCounts))
}
