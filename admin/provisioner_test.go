package admin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/raywall/dynamodb-ledger-lessons/admin"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAdminClient simula o plano administrativo mantendo o conjunto de
// tabelas existentes em memória.
type mockAdminClient struct {
	tables    map[string]types.TableStatus
	created   []*dynamodb.CreateTableInput
	deleted   []string
	describes int
}

func newMockAdminClient(existing ...string) *mockAdminClient {
	m := &mockAdminClient{tables: make(map[string]types.TableStatus)}
	for _, name := range existing {
		m.tables[name] = types.TableStatusActive
	}
	return m
}

func (m *mockAdminClient) CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	m.created = append(m.created, params)
	m.tables[*params.TableName] = types.TableStatusActive
	return &dynamodb.CreateTableOutput{}, nil
}

func (m *mockAdminClient) DeleteTable(ctx context.Context, params *dynamodb.DeleteTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error) {
	name := *params.TableName
	if _, ok := m.tables[name]; !ok {
		return nil, &types.ResourceNotFoundException{}
	}
	delete(m.tables, name)
	m.deleted = append(m.deleted, name)
	return &dynamodb.DeleteTableOutput{}, nil
}

func (m *mockAdminClient) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	m.describes++
	status, ok := m.tables[*params.TableName]
	if !ok {
		return nil, &types.ResourceNotFoundException{}
	}
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{
			TableName:   params.TableName,
			TableStatus: status,
		},
	}, nil
}

func customersSpec() admin.TableSpec {
	return admin.TableSpec{
		Name:    "customers",
		HashKey: admin.KeySpec{Name: "id", Type: types.ScalarAttributeTypeN},
		Indexes: []admin.IndexSpec{
			{
				Name:    "customer-id-filter",
				HashKey: admin.KeySpec{Name: "pk", Type: types.ScalarAttributeTypeS},
				SortKey: &admin.KeySpec{Name: "id", Type: types.ScalarAttributeTypeN},
			},
		},
	}
}

func TestProvisioner_Create(t *testing.T) {
	t.Parallel()

	client := newMockAdminClient()
	p := admin.NewProvisioner(client, zerolog.Nop())

	err := p.Create(context.Background(), customersSpec())

	require.NoError(t, err)
	require.Len(t, client.created, 1)

	input := client.created[0]
	assert.Equal(t, "customers", *input.TableName)
	assert.Equal(t, types.BillingModePayPerRequest, input.BillingMode)
	require.Len(t, input.GlobalSecondaryIndexes, 1)
	assert.Equal(t, "customer-id-filter", *input.GlobalSecondaryIndexes[0].IndexName)

	// atributos de chave da tabela e do índice, sem duplicar "id"
	names := make([]string, 0, len(input.AttributeDefinitions))
	for _, def := range input.AttributeDefinitions {
		names = append(names, *def.AttributeName)
	}
	assert.ElementsMatch(t, []string{"id", "pk"}, names)
}

func TestProvisioner_EnsureFresh_DropsExistingFirst(t *testing.T) {
	t.Parallel()

	client := newMockAdminClient("customers")
	p := admin.NewProvisioner(client, zerolog.Nop())

	err := p.EnsureFresh(context.Background(), customersSpec())

	require.NoError(t, err)
	assert.Equal(t, []string{"customers"}, client.deleted)
	assert.Len(t, client.created, 1)
}

func TestProvisioner_EnsureFresh_CreatesWhenAbsent(t *testing.T) {
	t.Parallel()

	client := newMockAdminClient()
	p := admin.NewProvisioner(client, zerolog.Nop())

	err := p.EnsureFresh(context.Background(), customersSpec())

	require.NoError(t, err)
	assert.Empty(t, client.deleted)
	assert.Len(t, client.created, 1)
}

func TestProvisioner_Drop_MissingTableIsNotAnError(t *testing.T) {
	t.Parallel()

	client := newMockAdminClient()
	p := admin.NewProvisioner(client, zerolog.Nop())

	err := p.Drop(context.Background(), "nope")

	assert.NoError(t, err)
	assert.Empty(t, client.deleted)
}

func TestProvisioner_Exists(t *testing.T) {
	t.Parallel()

	client := newMockAdminClient("customers")
	p := admin.NewProvisioner(client, zerolog.Nop())

	ok, err := p.Exists(context.Background(), "customers")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Exists(context.Background(), "transactions")
	require.NoError(t, err)
	assert.False(t, ok)
}

type failingAdminClient struct {
	*mockAdminClient
	err error
}

func (f *failingAdminClient) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return nil, f.err
}

func TestProvisioner_Exists_PropagatesUnknownErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("access denied")
	client := &failingAdminClient{mockAdminClient: newMockAdminClient(), err: boom}
	p := admin.NewProvisioner(client, zerolog.Nop())

	_, err := p.Exists(context.Background(), "customers")

	assert.ErrorIs(t, err, boom)
}
