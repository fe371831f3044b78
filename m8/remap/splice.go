package remap

import (
	"github.com/pkg/errors"

	"github.com/m8kit/m8file/m8/fx"
	"github.com/m8kit/m8file/m8/log"
	"github.com/m8kit/m8file/m8/song"
)

// Splice copies every allocated instrument, phrase and chain of src into
// free slots of dst, rewriting all cross-references for the new numbering.
// Instrument tables co-move with their instruments; tables and EQs beyond
// the instrument range keep their numbers. Both songs must use the same FX
// command table: command ids are table indices, so cells written under one
// era's table are wrong in another's.
func Splice(dst, src *song.Song) error {
	if fx.CommandNames(dst.Version).Len() != fx.CommandNames(src.Version).Len() {
		return errors.Errorf("cannot splice %s content into a %s song: incompatible FX command tables",
			src.Version, dst.Version)
	}
	instMap, err := AllocateInstruments(dst, src)
	if err != nil {
		return err
	}
	phraseMap, err := AllocatePhrases(dst, src)
	if err != nil {
		return err
	}
	chainMap, err := AllocateChains(dst, src)
	if err != nil {
		return err
	}

	tableMap := Identity(song.NumTables)
	for n, to := range instMap {
		if to != Dropped {
			tableMap[n] = to
		}
	}

	cmds := fx.CommandNames(src.Version)
	im := NewInstrumentMapping(instMap, cmds)
	tm := NewTableMapping(tableMap, cmds)
	em := NewEqMapping(Identity(song.NumEqs), cmds)

	for n, to := range instMap {
		if to == Dropped {
			continue
		}
		log.Debugf("instrument %02X -> %02X", n, to)
		inst := src.Instruments[n]
		remapInstrumentEq(inst, em)
		dst.Instruments[to] = inst
		table := src.Tables[n]
		remapTable(&table, im, tm, em)
		dst.Tables[to] = table
	}
	for n, to := range phraseMap {
		if to == Dropped {
			continue
		}
		log.Debugf("phrase %02X -> %02X", n, to)
		phrase := src.Phrases[n]
		remapPhrase(&phrase, im, tm, em)
		dst.Phrases[to] = phrase
	}
	for n, to := range chainMap {
		if to == Dropped {
			continue
		}
		log.Debugf("chain %02X -> %02X", n, to)
		chain := src.Chains[n]
		for c := range chain.Cells {
			ref := chain.Cells[c].Phrase
			if ref != song.EmptyRef && int(ref) < len(phraseMap) {
				chain.Cells[c].Phrase = phraseMap[ref]
			}
		}
		dst.Chains[to] = chain
	}
	return nil
}
