package dex

import (
	"context"
	"errors"
	"fmt"

	"github.com/nao1215/skyedex/internal/model"
)

// Fixture types with the relations PokeAPI reports for them.
var (
	fireType = &model.Type{
		Name: "fire",
		Relations: model.DamageRelations{
			HalfDamageFrom:   []string{"fire", "grass", "ice", "bug", "steel", "fairy"},
			DoubleDamageFrom: []string{"ground", "rock", "water"},
			HalfDamageTo:     []string{"fire", "water", "rock", "dragon"},
			DoubleDamageTo:   []string{"grass", "ice", "bug", "steel"},
		},
	}
	waterType = &model.Type{
		Name: "water",
		Relations: model.DamageRelations{
			HalfDamageFrom:   []string{"fire", "water", "ice", "steel"},
			DoubleDamageFrom: []string{"grass", "electric"},
			HalfDamageTo:     []string{"water", "grass", "dragon"},
			DoubleDamageTo:   []string{"fire", "ground", "rock"},
		},
	}
	grassType = &model.Type{
		Name: "grass",
		Relations: model.DamageRelations{
			HalfDamageFrom:   []string{"ground", "water", "grass", "electric"},
			DoubleDamageFrom: []string{"fire", "ice", "poison", "flying", "bug"},
			HalfDamageTo:     []string{"fire", "grass", "poison", "flying", "bug", "dragon", "steel"},
			DoubleDamageTo:   []string{"ground", "rock", "water"},
		},
	}
	ghostType = &model.Type{
		Name: "ghost",
		Relations: model.DamageRelations{
			NoDamageFrom:     []string{"normal", "fighting"},
			HalfDamageFrom:   []string{"poison", "bug"},
			DoubleDamageFrom: []string{"ghost", "dark"},
			NoDamageTo:       []string{"normal"},
			HalfDamageTo:     []string{"dark"},
			DoubleDamageTo:   []string{"psychic", "ghost"},
		},
	}
	normalType = &model.Type{
		Name: "normal",
		Relations: model.DamageRelations{
			NoDamageFrom:     []string{"ghost"},
			DoubleDamageFrom: []string{"fighting"},
			NoDamageTo:       []string{"ghost"},
			HalfDamageTo:     []string{"rock", "steel"},
		},
	}
	emptyType = &model.Type{Name: "shadow"}
)

// fakeProvider is an in-memory Provider.
type fakeProvider struct {
	pokemon map[string]*model.Pokemon
	types   map[string]*model.Type
	natures map[string]*model.Nature

	// failWith, when set, is returned for every lookup.
	failWith error

	// requested records every name passed to the provider.
	requested []string
}

func newFakeProvider() *fakeProvider {
	fp := &fakeProvider{
		pokemon: map[string]*model.Pokemon{
			"bulbasaur": {
				Name:      "bulbasaur",
				Types:     []string{"grass", "poison"},
				Stats:     model.BaseStats{HP: 45, Attack: 49, Defense: 49, SpecialAttack: 65, SpecialDefense: 65, Speed: 45},
				Abilities: []string{"overgrow", "chlorophyll"},
			},
		},
		types:   map[string]*model.Type{},
		natures: map[string]*model.Nature{"adamant": {Name: "adamant", DecreasedStat: "special-attack", IncreasedStat: "attack"}},
	}
	for _, ty := range []*model.Type{fireType, waterType, grassType, ghostType, normalType, emptyType} {
		fp.types[ty.Name] = ty
	}
	return fp
}

func (f *fakeProvider) FindPokemon(_ context.Context, name string) (*model.Pokemon, error) {
	f.requested = append(f.requested, name)
	if f.failWith != nil {
		return nil, f.failWith
	}
	if p, ok := f.pokemon[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("pokemon %q: %w", name, ErrProviderNotFound)
}

func (f *fakeProvider) FindType(_ context.Context, name string) (*model.Type, error) {
	f.requested = append(f.requested, name)
	if f.failWith != nil {
		return nil, f.failWith
	}
	if t, ok := f.types[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("type %q: %w", name, ErrProviderNotFound)
}

func (f *fakeProvider) FindNature(_ context.Context, name string) (*model.Nature, error) {
	f.requested = append(f.requested, name)
	if f.failWith != nil {
		return nil, f.failWith
	}
	if n, ok := f.natures[name]; ok {
		return n, nil
	}
	return nil, fmt.Errorf("nature %q: %w", name, ErrProviderNotFound)
}

var errBoom = errors.New("connection refused")
