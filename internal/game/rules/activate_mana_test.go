package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/costs"
	"github.com/maigus/maigus-engine-go/internal/game/counters"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

func TestActivateManaAbilityAddsMana(t *testing.T) {
	s, alice, _ := newTestState()
	forest := addPermanent(s, alice.ID, "Forest", game.CardTypeLand)

	r := newRunner()
	r.Abilities.Register(forest.ID, ManaAbility{
		Cost:     costs.FromComponents(costs.NewTap()),
		Produces: []mana.Symbol{mana.Green},
	})

	action := SpecialAction{Type: SpecialActionActivateManaAbility, CardID: forest.ID}
	require.NoError(t, r.CanPerform(s, alice.ID, action))
	require.NoError(t, r.Perform(s, alice.ID, action, nil))

	assert.True(t, forest.Tapped)
	assert.Equal(t, 1, alice.Pool.Amount(mana.ManaGreen))
	assert.Equal(t, game.EventAbilityActivate, s.Log[len(s.Log)-1].Type)
}

func TestActivateManaAbilityTappedSource(t *testing.T) {
	s, alice, _ := newTestState()
	forest := addPermanent(s, alice.ID, "Forest", game.CardTypeLand)
	forest.Tapped = true

	r := newRunner()
	r.Abilities.Register(forest.ID, ManaAbility{
		Cost:     costs.FromComponents(costs.NewTap()),
		Produces: []mana.Symbol{mana.Green},
	})

	err := r.CanPerform(s, alice.ID, SpecialAction{Type: SpecialActionActivateManaAbility, CardID: forest.ID})
	require.ErrorIs(t, err, ErrCantPayCost)
	assert.ErrorIs(t, err, costs.ErrAlreadyTapped)
}

func TestActivateManaAbilityNoSuchAbility(t *testing.T) {
	s, alice, _ := newTestState()
	forest := addPermanent(s, alice.ID, "Forest", game.CardTypeLand)

	r := newRunner()
	err := r.CanPerform(s, alice.ID, SpecialAction{Type: SpecialActionActivateManaAbility, CardID: forest.ID, AbilityIndex: 2})
	assert.ErrorIs(t, err, ErrNoSuchAbility)
}

func TestActivateManaAbilityNotController(t *testing.T) {
	s, alice, bob := newTestState()
	forest := addPermanent(s, bob.ID, "Forest", game.CardTypeLand)
	s.PriorityPlayer = alice.ID

	r := newRunner()
	r.Abilities.Register(forest.ID, ManaAbility{
		Cost:     costs.FromComponents(costs.NewTap()),
		Produces: []mana.Symbol{mana.Green},
	})

	err := r.CanPerform(s, alice.ID, SpecialAction{Type: SpecialActionActivateManaAbility, CardID: forest.ID})
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestActivateManaAbilityCondition(t *testing.T) {
	s, alice, _ := newTestState()
	shrine := addPermanent(s, alice.ID, "Sanctum", game.CardTypeArtifact)

	r := newRunner()
	r.Abilities.Register(shrine.ID, ManaAbility{
		Cost:      costs.FromComponents(costs.NewTap()),
		Produces:  []mana.Symbol{mana.Colorless},
		Condition: MinLife{Amount: 10},
	})

	action := SpecialAction{Type: SpecialActionActivateManaAbility, CardID: shrine.ID}
	require.NoError(t, r.CanPerform(s, alice.ID, action))

	alice.Life = 5
	assert.ErrorIs(t, r.CanPerform(s, alice.ID, action), ErrCantPayCost)
}

func TestActivateManaAbilityControlCondition(t *testing.T) {
	s, alice, _ := newTestState()
	temple := addPermanent(s, alice.ID, "Temple", game.CardTypeLand)

	r := newRunner()
	r.Abilities.Register(temple.ID, ManaAbility{
		Cost:      costs.FromComponents(costs.NewTap()),
		Produces:  []mana.Symbol{mana.White},
		Condition: ControlsPermanentType{CardType: game.CardTypeCreature, Count: 2},
	})

	action := SpecialAction{Type: SpecialActionActivateManaAbility, CardID: temple.ID}
	assert.ErrorIs(t, r.CanPerform(s, alice.ID, action), ErrCantPayCost)

	addPermanent(s, alice.ID, "Bear", game.CardTypeCreature)
	addPermanent(s, alice.ID, "Wolf", game.CardTypeCreature)
	assert.NoError(t, r.CanPerform(s, alice.ID, action))
}

func TestActivateManaAbilityRemoveXCounters(t *testing.T) {
	s, alice, _ := newTestState()
	network := addPermanent(s, alice.ID, "Mage-Ring Network", game.CardTypeLand)
	network.Counters.Add(counters.CounterTypeCharge, 3)

	r := newRunner()
	r.Abilities.Register(network.ID, ManaAbility{
		Cost:     costs.FromComponents(costs.NewTap(), costs.NewRemoveCounters(counters.CounterTypeCharge, 0)),
		Produces: []mana.Symbol{mana.Colorless},
	})

	dm := game.AutoDecisionMaker{Strategy: game.FallbackMaximum}
	require.NoError(t, r.Perform(s, alice.ID, SpecialAction{Type: SpecialActionActivateManaAbility, CardID: network.ID}, dm))

	assert.Equal(t, 0, network.Counters.Count(counters.CounterTypeCharge))
	assert.Equal(t, 3, alice.Pool.Amount(mana.ManaColorless))
}

func TestActivateManaAbilityInsidePaymentWindow(t *testing.T) {
	s, alice, _ := newTestState()
	forest := addPermanent(s, alice.ID, "Forest", game.CardTypeLand)
	land := addHandCard(s, alice.ID, "Island", game.CardTypeLand)
	s.PriorityPlayer = "bob"

	r := newRunner()
	r.Abilities.Register(forest.ID, ManaAbility{
		Cost:     costs.FromComponents(costs.NewTap()),
		Produces: []mana.Symbol{mana.Green},
	})
	r.EnterPaymentWindow()
	defer r.ExitPaymentWindow()

	assert.NoError(t, r.CanPerform(s, alice.ID, SpecialAction{Type: SpecialActionActivateManaAbility, CardID: forest.ID}))
	assert.ErrorIs(t, r.CanPerform(s, alice.ID, SpecialAction{Type: SpecialActionPlayLand, CardID: land.ID}), ErrNotYourPriority)
}

func TestManaAbilityRegistry(t *testing.T) {
	r := NewManaAbilityRegistry()
	first := r.Register("perm", ManaAbility{Produces: []mana.Symbol{mana.White}})
	second := r.Register("perm", ManaAbility{Produces: []mana.Symbol{mana.Blue}})
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	ability, ok := r.Ability("perm", 1)
	require.True(t, ok)
	assert.Equal(t, []mana.Symbol{mana.Blue}, ability.Produces)

	r.Unregister("perm")
	_, ok = r.Ability("perm", 0)
	assert.False(t, ok)
}
