// Command negentropy-demo reconciles two in-memory sets of uint64 ids
// against each other, round by round, and reports what each side learns
// from the other. It never opens a socket: the two "peers" are just two
// trees in the same process, each message handed directly to the other's
// Respond call, which is enough to exercise the full message exchange and
// termination logic without any transport concerns getting in the way.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/negentropy-go/negentropy"
	"github.com/negentropy-go/negentropy/item"
	"github.com/negentropy-go/negentropy/monoid"
	"github.com/negentropy-go/negentropy/reconcile"
	"github.com/negentropy-go/negentropy/store"
)

// record is the demo's store.Object: just the id itself, wide enough to
// stand in for whatever richer payload a real embedder would key by id.
type record item.Uint64

func (r record) Item() item.Uint64 { return item.Uint64(r) }

var log = logrus.StandardLogger()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		aFlag     string
		bFlag     string
		threshold int
		logLevel  string
		maxRounds int
	)

	cmd := &cobra.Command{
		Use:   "negentropy-demo",
		Short: "Reconcile two local id sets and report what each side learns",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("parse log level: %w", err)
			}
			log.SetLevel(level)

			idsA, err := parseIDs(aFlag)
			if err != nil {
				return fmt.Errorf("parse --a: %w", err)
			}
			idsB, err := parseIDs(bFlag)
			if err != nil {
				return fmt.Errorf("parse --b: %w", err)
			}

			return run(idsA, idsB, threshold, maxRounds)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&aFlag, "a", "1,2,3,4,5,10,11,12", "comma-separated uint64 ids held by peer A")
	flags.StringVar(&bFlag, "b", "3,4,5,6,7,8,9,12,13", "comma-separated uint64 ids held by peer B")
	flags.IntVar(&threshold, "threshold", 4, "item count below which a mismatched range ships as a flat list")
	flags.IntVar(&maxRounds, "max-rounds", 32, "safety cap on reconciliation rounds before giving up")
	flags.StringVar(&logLevel, "log-level", "info", "logrus level: trace, debug, info, warn, error")

	return cmd
}

func parseIDs(csv string) ([]item.Uint64, error) {
	fields := strings.Split(csv, ",")
	ids := make([]item.Uint64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, item.Uint64(n))
	}
	return ids, nil
}

func run(idsA, idsB []item.Uint64, threshold, maxRounds int) error {
	treeA := buildTree(idsA)
	treeB := buildTree(idsB)

	storeA := buildStore(idsA)
	storeB := buildStore(idsB)

	log.WithFields(logrus.Fields{"peerA_count": treeA.Count(), "peerB_count": treeB.Count()}).Info("starting reconciliation")

	msgToB := reconcile.FirstMessage[item.Uint64, monoid.Sum, record](treeA)

	var learnedByA, learnedByB []item.Uint64
	turn := "A->B"
	msg := msgToB

	for round := 1; round <= maxRounds; round++ {
		log.WithFields(logrus.Fields{"round": round, "turn": turn}).Debug("processing message")

		if turn == "A->B" {
			reply, err := reconcile.Respond[item.Uint64, monoid.Sum, record](treeB, storeB, msg, threshold, nil)
			if err != nil {
				return fmt.Errorf("peer B respond: %w", err)
			}
			for _, obj := range reply.Provide {
				learnedByA = append(learnedByA, obj.Item())
			}
			if reply.IsEnd() {
				log.WithField("round", round).Info("converged")
				break
			}
			msg, turn = reply, "B->A"
			continue
		}

		reply, err := reconcile.Respond[item.Uint64, monoid.Sum, record](treeA, storeA, msg, threshold, nil)
		if err != nil {
			return fmt.Errorf("peer A respond: %w", err)
		}
		for _, obj := range reply.Provide {
			learnedByB = append(learnedByB, obj.Item())
		}
		if reply.IsEnd() {
			log.WithField("round", round).Info("converged")
			break
		}
		msg, turn = reply, "A->B"
	}

	fmt.Printf("peer A learned %d id(s) it did not have: %v\n", len(learnedByA), learnedByA)
	fmt.Printf("peer B learned %d id(s) it did not have: %v\n", len(learnedByB), learnedByB)
	return nil
}

func buildTree(ids []item.Uint64) negentropy.Tree[item.Uint64, monoid.Sum] {
	return negentropy.Build[item.Uint64, monoid.Sum](ids...)
}

func buildStore(ids []item.Uint64) *store.Memory[item.Uint64, record] {
	s := store.NewMemory[item.Uint64, record]()
	for _, id := range ids {
		s.Put(record(id))
	}
	return s
}
