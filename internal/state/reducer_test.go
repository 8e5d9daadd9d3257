package state

import "testing"

func TestReduceNextPage(t *testing.T) {
	st := NewDocumentState()
	st.Publish(testPages(3))

	reducer := NewStateReducer()
	if !reducer.Reduce(st, NextPageAction{}) {
		t.Fatal("Expected NextPageAction to change the view")
	}
	if st.CurrentPage() != 1 {
		t.Errorf("Expected currentPage=1, got %d", st.CurrentPage())
	}
}

func TestReducePrevPageAtStart(t *testing.T) {
	st := NewDocumentState()
	st.Publish(testPages(3))

	reducer := NewStateReducer()
	if reducer.Reduce(st, PrevPageAction{}) {
		t.Error("PrevPageAction at page 0 should not change the view")
	}
	if st.CurrentPage() != 0 {
		t.Errorf("Expected currentPage=0, got %d", st.CurrentPage())
	}
}

func TestReduceNextPageAtEnd(t *testing.T) {
	st := NewDocumentState()
	st.Publish(testPages(2))
	st.NextPage()

	reducer := NewStateReducer()
	if reducer.Reduce(st, NextPageAction{}) {
		t.Error("NextPageAction at the last page should not change the view")
	}
	if st.CurrentPage() != 1 {
		t.Errorf("Expected currentPage=1, got %d", st.CurrentPage())
	}
}

func TestReduceResizeRequestsRedraw(t *testing.T) {
	st := NewDocumentState()
	reducer := NewStateReducer()
	if !reducer.Reduce(st, ResizeAction{Width: 120, Height: 40}) {
		t.Error("Expected ResizeAction to request a redraw")
	}
}

func TestReduceUnknownActionIsNoop(t *testing.T) {
	st := NewDocumentState()
	reducer := NewStateReducer()
	if reducer.Reduce(st, struct{}{}) {
		t.Error("Expected unknown action to be a no-op")
	}
}
