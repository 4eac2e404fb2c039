//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"bookfair-reservation/internal/domain/maplayout"
	"bookfair-reservation/internal/domain/stall"
	"bookfair-reservation/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hallLayout = `{"halls":[
	{"name":"Hall A","stalls":[
		{"stallId":"A01","size":"SMALL","x":10,"y":20,"genres":"Fiction"},
		{"stallId":"A02","size":"large","x":30,"y":20},
		{"size":"MEDIUM"}
	]},
	{"name":"Hall B","stalls":[
		{"id":"B01","size":"MEDIUM"}
	]}
]}`

func TestMapLayoutCommands_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: レイアウトを保存しストールを作成する", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewMapLayoutCommands(f.store, f.clock)

		result, err := cmds.Save(ctx, []byte(hallLayout))
		require.NoError(t, err)

		assert.Equal(t, 2, result.HallsCount)
		assert.Equal(t, 4, result.TotalStalls)
		assert.Equal(t, 3, result.CreatedStalls)
		assert.Zero(t, result.UpdatedStalls)
		assert.Equal(t, 1, result.ErrorStalls)

		layouts := f.store.Layouts()
		require.Len(t, layouts, 1)
		assert.Equal(t, hallLayout, layouts[0].LayoutJSON)
		assert.Equal(t, fixedNow, layouts[0].CreatedAt)
	})

	t.Run("正常系: 既存ストールは予約状態を保ったまま更新する", func(t *testing.T) {
		f := newFixture(t)
		u := f.addUser("holder@example.com")
		a01 := f.store.AddStall("A01", stall.SizeLarge)
		f.store.AddReservation(u, a01.ID, fixedNow, "")
		cmds := commands.NewMapLayoutCommands(f.store, f.clock)

		result, err := cmds.Save(ctx, []byte(hallLayout))
		require.NoError(t, err)
		assert.Equal(t, 2, result.CreatedStalls)
		assert.Equal(t, 1, result.UpdatedStalls)

		got, _ := f.store.Stall(a01.ID)
		assert.True(t, got.Reserved)
		assert.Equal(t, "SMALL", got.Size)
		assert.Equal(t, int32(10), got.X)
		assert.Equal(t, "Fiction", got.Genres)
	})

	t.Run("正常系: ジャンル未指定の再保存は既存のジャンルを残す", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewMapLayoutCommands(f.store, f.clock)

		_, err := cmds.Save(ctx, []byte(hallLayout))
		require.NoError(t, err)
		_, err = cmds.Save(ctx, []byte(`{"halls":[{"stalls":[{"stallId":"A01","x":99}]}]}`))
		require.NoError(t, err)

		assert.Len(t, f.store.Layouts(), 2)
		a01, ok := f.store.StallByName("A01")
		require.True(t, ok)
		assert.Equal(t, "Fiction", a01.Genres)
		assert.Equal(t, int32(99), a01.X)
	})

	t.Run("異常系: hallsがない", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewMapLayoutCommands(f.store, f.clock)

		_, err := cmds.Save(ctx, []byte(`{"stalls":[]}`))
		assert.ErrorIs(t, err, maplayout.ErrHallsRequired)
		assert.Empty(t, f.store.Layouts())
	})

	t.Run("異常系: 保存に失敗したらストールも作成しない", func(t *testing.T) {
		f := newFixture(t)
		f.store.FailNext("stalls.UpsertByName", errors.New("connection reset"))
		cmds := commands.NewMapLayoutCommands(f.store, f.clock)

		_, err := cmds.Save(ctx, []byte(hallLayout))
		require.Error(t, err)
		assert.Empty(t, f.store.Layouts())
	})
}

func TestMapLayoutCommands_DeleteAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cmds := commands.NewMapLayoutCommands(f.store, f.clock)

	for range 2 {
		_, err := cmds.Save(ctx, []byte(hallLayout))
		require.NoError(t, err)
	}

	deleted, err := cmds.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Empty(t, f.store.Layouts())
}
