package possessore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/possessore"
)

func TestService_FindByNameAndComune(t *testing.T) {
	type args struct {
		nome     string
		comuneID int64
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *possessore.MockRepository)
		wantID    int64
		wantFound bool
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "FoundNormalised",
			args: args{nome: "  Rossi   Mario fu Luigi ", comuneID: 1},
			setupMock: func(m *possessore.MockRepository) {
				m.EXPECT().
					FindPossessore(gomock.Any(), int64(1), "Rossi Mario fu Luigi").
					Return(&catasto.Possessore{ID: 4, Attivo: false}, nil)
			},
			wantID:    4,
			wantFound: true,
		},
		{
			name: "NotFound",
			args: args{nome: "Bianchi Anna", comuneID: 1},
			setupMock: func(m *possessore.MockRepository) {
				m.EXPECT().
					FindPossessore(gomock.Any(), int64(1), "Bianchi Anna").
					Return(nil, nil)
			},
		},
		{
			name:    "BlankName",
			args:    args{nome: "   ", comuneID: 1},
			wantErr: true,
		},
		{
			name: "RepoError",
			args: args{nome: "Bianchi Anna", comuneID: 1},
			setupMock: func(m *possessore.MockRepository) {
				m.EXPECT().
					FindPossessore(gomock.Any(), int64(1), "Bianchi Anna").
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := possessore.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			id, found, err := possessore.NewService(repo).FindByNameAndComune(context.Background(), tt.args.nome, tt.args.comuneID)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    possessore.CreateParams
		setupMock func(m *possessore.MockRepository)
		wantID    int64
		wantKind  catasto.Kind
	}

	tests := []testCase{
		{
			name: "Success",
			params: possessore.CreateParams{
				ComuneID:     1,
				NomeCompleto: "Rossi Mario",
				CognomeNome:  new("Rossi Mario"),
				Paternita:    new("   "),
			},
			setupMock: func(m *possessore.MockRepository) {
				m.EXPECT().GetComune(gomock.Any(), int64(1)).Return(&catasto.Comune{ID: 1}, nil)
				m.EXPECT().InsertPossessore(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *catasto.Possessore) error {
						p.ID = 10
						assert.Equal(t, &catasto.Possessore{
							ID:           10,
							ComuneID:     1,
							NomeCompleto: "Rossi Mario",
							CognomeNome:  new("Rossi Mario"),
							Attivo:       true,
						}, p)
						return nil
					})
			},
			wantID: 10,
		},
		{
			name: "SynthesisedName",
			params: possessore.CreateParams{
				ComuneID:    1,
				CognomeNome: new("Verdi Carlo"),
				Paternita:   new("fu Giovanni"),
				Attivo:      new(false),
			},
			setupMock: func(m *possessore.MockRepository) {
				m.EXPECT().GetComune(gomock.Any(), int64(1)).Return(&catasto.Comune{ID: 1}, nil)
				m.EXPECT().InsertPossessore(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *catasto.Possessore) error {
						p.ID = 11
						assert.Equal(t, "Verdi Carlo fu Giovanni", p.NomeCompleto)
						assert.False(t, p.Attivo)
						return nil
					})
			},
			wantID: 11,
		},
		{
			name:     "EmptyName",
			params:   possessore.CreateParams{ComuneID: 1},
			wantKind: catasto.KindDataError,
		},
		{
			name:   "MissingComune",
			params: possessore.CreateParams{ComuneID: 9, NomeCompleto: "Rossi Mario"},
			setupMock: func(m *possessore.MockRepository) {
				m.EXPECT().GetComune(gomock.Any(), int64(9)).Return(nil, catasto.NotFound("comune 9 not found"))
			},
			wantKind: catasto.KindNotFound,
		},
		{
			name:   "Duplicate",
			params: possessore.CreateParams{ComuneID: 1, NomeCompleto: "Rossi Mario"},
			setupMock: func(m *possessore.MockRepository) {
				m.EXPECT().GetComune(gomock.Any(), int64(1)).Return(&catasto.Comune{ID: 1}, nil)
				m.EXPECT().InsertPossessore(gomock.Any(), gomock.Any()).
					Return(catasto.Unique("possessore_nome_completo_comune_id_key", "duplicate"))
			},
			wantKind: catasto.KindUniqueConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := possessore.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			id, err := possessore.NewService(repo).Create(context.Background(), tt.params)

			if tt.wantKind != catasto.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, catasto.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestService_CreateStoresNormalisedFields(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := possessore.NewMockRepository(ctrl)
	repo.EXPECT().GetComune(gomock.Any(), int64(1)).Return(&catasto.Comune{ID: 1}, nil)
	repo.EXPECT().InsertPossessore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *catasto.Possessore) error {
			assert.Equal(t, "Verdi Carlo fu Giovanni", p.NomeCompleto)
			assert.Equal(t, "Verdi Carlo", *p.CognomeNome)
			assert.Nil(t, p.Paternita)
			assert.True(t, p.Attivo)

			p.ID = 3

			return nil
		})

	id, err := possessore.NewService(repo).Create(context.Background(), possessore.CreateParams{
		ComuneID:     1,
		NomeCompleto: " Verdi  Carlo fu Giovanni",
		CognomeNome:  new(" Verdi Carlo "),
		Paternita:    new(""),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestService_Resolve(t *testing.T) {
	t.Run("ExplicitID", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		repo := possessore.NewMockRepository(ctrl)
		repo.EXPECT().GetPossessore(gomock.Any(), int64(5)).Return(&catasto.Possessore{ID: 5}, nil)

		id, err := possessore.NewService(repo).Resolve(context.Background(), 2, catasto.PossessoreSpec{PossessoreID: new(int64(5))})
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})

	t.Run("Existing", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		repo := possessore.NewMockRepository(ctrl)
		repo.EXPECT().FindPossessore(gomock.Any(), int64(2), "Rossi Mario").Return(&catasto.Possessore{ID: 8}, nil)

		id, err := possessore.NewService(repo).Resolve(context.Background(), 2, catasto.PossessoreSpec{NomeCompleto: "Rossi Mario"})
		require.NoError(t, err)
		assert.Equal(t, int64(8), id)
	})

	t.Run("CreatedWhenAbsent", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		repo := possessore.NewMockRepository(ctrl)
		repo.EXPECT().FindPossessore(gomock.Any(), int64(2), "Neri Paolo").Return(nil, nil)
		repo.EXPECT().GetComune(gomock.Any(), int64(2)).Return(&catasto.Comune{ID: 2}, nil)
		repo.EXPECT().InsertPossessore(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *catasto.Possessore) error {
				assert.Equal(t, int64(2), p.ComuneID)
				p.ID = 12
				return nil
			})

		id, err := possessore.NewService(repo).Resolve(context.Background(), 2, catasto.PossessoreSpec{CognomeNome: new("Neri Paolo")})
		require.NoError(t, err)
		assert.Equal(t, int64(12), id)
	})
}

func TestService_Deactivate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		repo := possessore.NewMockRepository(ctrl)
		repo.EXPECT().GetPossessore(gomock.Any(), int64(3)).Return(&catasto.Possessore{ID: 3, NomeCompleto: "Rossi Mario", Attivo: true}, nil)
		repo.EXPECT().UpdatePossessore(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *catasto.Possessore) error {
				assert.False(t, p.Attivo)
				assert.Equal(t, "Rossi Mario", p.NomeCompleto)
				return nil
			})

		require.NoError(t, possessore.NewService(repo).Deactivate(context.Background(), 3))
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		repo := possessore.NewMockRepository(ctrl)
		repo.EXPECT().GetPossessore(gomock.Any(), int64(3)).Return(nil, catasto.NotFound("possessore 3 not found"))

		err := possessore.NewService(repo).Deactivate(context.Background(), 3)
		assert.ErrorIs(t, err, catasto.ErrNotFound)
	})
}

func TestService_UpdateRejectsBlankName(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := possessore.NewMockRepository(ctrl)
	repo.EXPECT().GetPossessore(gomock.Any(), int64(3)).Return(&catasto.Possessore{ID: 3, NomeCompleto: "Rossi Mario"}, nil)

	_, err := possessore.NewService(repo).Update(context.Background(), 3, possessore.UpdateParams{NomeCompleto: new("  ")})
	assert.ErrorIs(t, err, catasto.ErrDataError)
}
