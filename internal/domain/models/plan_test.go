package models

import (
	"testing"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeldexPlan(t *testing.T) {
	plan := BeldexPlan()
	require.NoError(t, plan.Validate())

	assert.Equal(t, []string{"Utils", "BeldexIP", "BeldexRedeem", "BeldexTransfer", "BeldexETH"}, plan.Artifacts())
	require.Len(t, plan.Stages, 3)

	assert.Equal(t, 0, plan.StageOf("BeldexIP"))
	assert.Equal(t, 1, plan.StageOf("BeldexTransfer"))
	assert.Equal(t, 2, plan.StageOf("BeldexETH"))
	assert.Equal(t, -1, plan.StageOf("TestBeldexToken"))

	eth := plan.Stages[2].Steps[0]
	assert.Equal(t, []Arg{AddressOf("BeldexTransfer"), AddressOf("BeldexRedeem"), Literal("10000000000000000")}, eth.Args)
}

func TestPlanValidate(t *testing.T) {
	tests := []struct {
		name    string
		plan    *Plan
		wantErr string
	}{
		{
			name:    "empty plan",
			plan:    &Plan{},
			wantErr: "at least one stage",
		},
		{
			name:    "empty stage",
			plan:    &Plan{Stages: []*Stage{{Message: "nothing"}}},
			wantErr: "stage 1 has no contracts",
		},
		{
			name:    "missing artifact name",
			plan:    &Plan{Stages: []*Stage{{Steps: []*Step{{}}}}},
			wantErr: "without an artifact name",
		},
		{
			name: "duplicate artifact",
			plan: &Plan{Stages: []*Stage{
				{Steps: []*Step{{Artifact: "Utils"}}},
				{Steps: []*Step{{Artifact: "Utils"}}},
			}},
			wantErr: "Utils is deployed in stage 1 and stage 2",
		},
		{
			name: "ref to unknown contract",
			plan: &Plan{Stages: []*Stage{
				{Steps: []*Step{{Artifact: "BeldexRedeem", Args: []Arg{AddressOf("BeldexIP")}}}},
			}},
			wantErr: "not part of the plan",
		},
		{
			name: "ref within the same stage",
			plan: &Plan{Stages: []*Stage{
				{Steps: []*Step{
					{Artifact: "BeldexIP"},
					{Artifact: "BeldexRedeem", Args: []Arg{AddressOf("BeldexIP")}},
				}},
			}},
			wantErr: "only deployed in stage 1",
		},
		{
			name: "ref to a later stage",
			plan: &Plan{Stages: []*Stage{
				{Steps: []*Step{{Artifact: "BeldexRedeem", Args: []Arg{AddressOf("BeldexIP")}}}},
				{Steps: []*Step{{Artifact: "BeldexIP"}}},
			}},
			wantErr: "only deployed in stage 2",
		},
		{
			name: "argument with both ref and value",
			plan: &Plan{Stages: []*Stage{
				{Steps: []*Step{{Artifact: "Utils"}}},
				{Steps: []*Step{{Artifact: "BeldexIP", Args: []Arg{{Ref: "Utils", Value: "1"}}}}},
			}},
			wantErr: "exactly one of ref or value",
		},
		{
			name: "argument with neither ref nor value",
			plan: &Plan{Stages: []*Stage{
				{Steps: []*Step{{Artifact: "Utils", Args: []Arg{{}}}}},
			}},
			wantErr: "exactly one of ref or value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.plan.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidPlan)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestArgString(t *testing.T) {
	assert.Equal(t, "@BeldexIP", AddressOf("BeldexIP").String())
	assert.Equal(t, `"10000000000000000"`, Literal("10000000000000000").String())
}

func TestBytecode(t *testing.T) {
	t.Run("decodes prefixed and bare hex", func(t *testing.T) {
		b, err := NewBytecode("0x6001").Bytes()
		require.NoError(t, err)
		assert.Equal(t, []byte{0x60, 0x01}, b)

		b, err = NewBytecode("6001").Bytes()
		require.NoError(t, err)
		assert.Equal(t, []byte{0x60, 0x01}, b)
	})

	t.Run("rejects empty and unlinked code", func(t *testing.T) {
		_, err := NewBytecode("0x").Bytes()
		assert.Error(t, err)

		_, err = NewBytecode("0x60__$abc$__").Bytes()
		assert.ErrorContains(t, err, "unlinked")
	})

	t.Run("unmarshals both artifact layouts", func(t *testing.T) {
		var plain, object Bytecode
		require.NoError(t, plain.UnmarshalJSON([]byte(`"0x6001"`)))
		require.NoError(t, object.UnmarshalJSON([]byte(`{"object":"0x6001","sourceMap":""}`)))
		assert.Equal(t, plain, object)

		var bad Bytecode
		assert.Error(t, bad.UnmarshalJSON([]byte(`42`)))
	})
}
