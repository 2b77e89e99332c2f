package engine

import "testing"

func TestClassifyTask(t *testing.T) {
	cases := []struct {
		name string
		want TaskCategory
	}{
		{"日勤看護", TaskCategory{Nursing: true}},
		{"新人訓練", TaskCategory{Training: true}},
		{"リーダー業務", TaskCategory{Leadership: true}},
		{"サブリーダー業務", TaskCategory{Leadership: true}},
		{"ワゴン送迎", TaskCategory{Wagon: true, GenericDrive: true}},
		{"普通車送迎", TaskCategory{StandardCar: true, GenericDrive: true}},
		{"運転手配", TaskCategory{GenericDrive: true}},
		{"清掃", TaskCategory{}},
	}

	for _, c := range cases {
		got := ClassifyTask(c.name)
		if got != c.want {
			t.Errorf("ClassifyTask(%q) = %+v, want %+v", c.name, got, c.want)
		}
	}
}

func TestClassifyTaskMultipleCategories(t *testing.T) {
	// A task name can match more than one keyword family at once; classification
	// must not short-circuit on the first match.
	cat := ClassifyTask("看護リーダー訓練")
	if !cat.Nursing || !cat.Leadership || !cat.Training {
		t.Errorf("expected Nursing, Leadership, and Training all set, got %+v", cat)
	}
}

func TestTaskCategoryIsDrivingTask(t *testing.T) {
	if !(TaskCategory{Wagon: true}).IsDrivingTask() {
		t.Error("Wagon task should be a driving task")
	}
	if !(TaskCategory{StandardCar: true}).IsDrivingTask() {
		t.Error("StandardCar task should be a driving task")
	}
	if !(TaskCategory{GenericDrive: true}).IsDrivingTask() {
		t.Error("GenericDrive task should be a driving task")
	}
	if (TaskCategory{Nursing: true}).IsDrivingTask() {
		t.Error("Nursing-only task should not be a driving task")
	}
}
